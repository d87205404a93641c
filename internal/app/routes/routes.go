package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/controllers"
	"github.com/shariarmdimtiaz/college-booking-server/internal/middleware"
)

// AccessLevel states what a caller must present before a handler runs.
type AccessLevel int

const (
	// Public routes run with no token at all.
	Public AccessLevel = iota
	// Authenticated routes require a valid bearer token.
	Authenticated
	// Registered routes additionally require the token's email to belong
	// to a registered user.
	Registered
)

// Route is one row of the routing policy table: method, path, required
// access level and the handler. Keeping the table declarative makes the
// whole HTTP surface and its protection reviewable in one place.
type Route struct {
	Method  string
	Path    string
	Access  AccessLevel
	Handler gin.HandlerFunc
}

// livenessMessage is the body of the root probe.
const livenessMessage = "College-booking is running..."

// Table builds the full routing policy table. Every route is currently
// Public; the Authenticated and Registered levels exist so individual
// rows can be tightened without touching handler code.
func Table(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	collegeController *controllers.CollegeController,
	admissionController *controllers.AdmissionController,
) []Route {
	return []Route{
		// Liveness probe
		{http.MethodGet, "/", Public, func(ctx *gin.Context) {
			ctx.String(http.StatusOK, livenessMessage)
		}},

		// Token issuance
		{http.MethodPost, "/jwt", Public, authController.IssueToken},

		// Users
		{http.MethodGet, "/users", Public, userController.GetAllUsers},
		{http.MethodGet, "/isUser/:email", Public, userController.IsUser},
		{http.MethodPost, "/addUser", Public, userController.AddUser},
		{http.MethodDelete, "/users/:id", Public, userController.DeleteUser},

		// Colleges; both spellings of the list and detail routes serve the
		// same handlers.
		{http.MethodPost, "/addcollege", Public, collegeController.AddCollege},
		{http.MethodGet, "/college", Public, collegeController.GetAllColleges},
		{http.MethodGet, "/allcollege", Public, collegeController.GetAllColleges},
		{http.MethodGet, "/collegeDetails/:id", Public, collegeController.GetCollegeByID},
		{http.MethodGet, "/college/:id", Public, collegeController.GetCollegeByID},
		{http.MethodGet, "/subjects/:id", Public, collegeController.GetSubjectsByCollegeID},

		// Research
		{http.MethodGet, "/research", Public, collegeController.GetAllResearch},
		{http.MethodGet, "/research/:id", Public, collegeController.GetResearchByCollegeID},

		// Admissions
		{http.MethodPost, "/apply", Public, admissionController.Apply},
		{http.MethodGet, "/admission", Public, admissionController.GetAllAdmissions},
		{http.MethodGet, "/mycollege/:email", Public, admissionController.GetAdmissionsByEmail},
		{http.MethodGet, "/myEnrolledCollege/:id", Public, admissionController.GetAdmissionByID},
		{http.MethodDelete, "/deleteMyCollege/:id", Public, admissionController.DeleteAdmission},
		{http.MethodPatch, "/feedback/:id", Public, admissionController.UpdateFeedback},
	}
}

// SetupRouter registers the policy table on the engine, wrapping each
// row in the middleware chain its access level demands.
func SetupRouter(router *gin.Engine, table []Route, authMiddleware *middleware.AuthMiddleware) {
	for _, route := range table {
		handlers := make([]gin.HandlerFunc, 0, 3)
		switch route.Access {
		case Authenticated:
			handlers = append(handlers, authMiddleware.JWTAuth())
		case Registered:
			handlers = append(handlers, authMiddleware.JWTAuth(), authMiddleware.RegisteredUser())
		}
		handlers = append(handlers, route.Handler)
		router.Handle(route.Method, route.Path, handlers...)
	}
}
