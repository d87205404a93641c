package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/controllers"
	"github.com/shariarmdimtiaz/college-booking-server/internal/middleware"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTable() []Route {
	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "routes-test-secret",
		TokenExp:    time.Minute,
		TokenIssuer: "college-booking",
	})
	return Table(
		controllers.NewAuthController(tokenService),
		controllers.NewUserController(nil),
		controllers.NewCollegeController(nil),
		controllers.NewAdmissionController(nil),
	)
}

func TestTable_CoversSurface(t *testing.T) {
	table := newTable()

	want := []string{
		http.MethodGet + " /",
		http.MethodPost + " /jwt",
		http.MethodGet + " /users",
		http.MethodGet + " /isUser/:email",
		http.MethodPost + " /addUser",
		http.MethodDelete + " /users/:id",
		http.MethodPost + " /addcollege",
		http.MethodGet + " /college",
		http.MethodGet + " /allcollege",
		http.MethodGet + " /collegeDetails/:id",
		http.MethodGet + " /college/:id",
		http.MethodGet + " /subjects/:id",
		http.MethodGet + " /research",
		http.MethodGet + " /research/:id",
		http.MethodPost + " /apply",
		http.MethodGet + " /admission",
		http.MethodGet + " /mycollege/:email",
		http.MethodGet + " /myEnrolledCollege/:id",
		http.MethodDelete + " /deleteMyCollege/:id",
		http.MethodPatch + " /feedback/:id",
	}

	seen := make(map[string]bool)
	for _, route := range table {
		key := route.Method + " " + route.Path
		require.False(t, seen[key], "duplicate route %s", key)
		seen[key] = true
		require.NotNil(t, route.Handler, "route %s has no handler", key)
	}

	for _, key := range want {
		assert.True(t, seen[key], "missing route %s", key)
	}
	assert.Len(t, table, len(want))
}

func TestSetupRouter_Liveness(t *testing.T) {
	router := gin.New()
	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "routes-test-secret",
		TokenExp:    time.Minute,
		TokenIssuer: "college-booking",
	})
	SetupRouter(router, newTable(), middleware.NewAuthMiddleware(tokenService, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "College-booking is running...", w.Body.String())
}

// A row marked Authenticated is rejected without a token and served with
// one; the table is where protection gets switched on.
func TestSetupRouter_AppliesAccessLevel(t *testing.T) {
	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "routes-test-secret",
		TokenExp:    time.Minute,
		TokenIssuer: "college-booking",
	})

	table := []Route{
		{http.MethodGet, "/guarded", Authenticated, func(ctx *gin.Context) {
			ctx.Status(http.StatusNoContent)
		}},
	}

	router := gin.New()
	SetupRouter(router, table, middleware.NewAuthMiddleware(tokenService, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := tokenService.Issue(&auth.Claims{Email: "caller@example.com"})
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
