package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models/dto"
	"github.com/shariarmdimtiaz/college-booking-server/internal/app/services"
	"github.com/shariarmdimtiaz/college-booking-server/internal/middleware"
)

// AdmissionController handles admission applications and feedback
type AdmissionController struct {
	admissionService services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService services.AdmissionService) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// Apply records a new admission application
// @Summary Apply for admission
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body dto.ApplyRequest true "Admission application"
// @Success 201 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /apply [post]
func (c *AdmissionController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admission data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.admissionService.Apply(ctx, &models.Admission{
		CollegeID:     req.CollegeID,
		College:       req.College,
		Email:         req.Email,
		CandidateName: req.CandidateName,
		Phone:         req.Phone,
		Address:       req.Address,
		DateOfBirth:   req.DateOfBirth,
		ImageURL:      req.ImageURL,
		Subject:       req.Subject,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InsertResult{Acknowledged: true, InsertedID: id})
}

// GetAllAdmissions lists every admission application
// @Summary List admissions
// @Tags admissions
// @Produce json
// @Success 200 {array} models.Admission
// @Router /admission [get]
func (c *AdmissionController) GetAllAdmissions(ctx *gin.Context) {
	admissions, err := c.admissionService.GetAllAdmissions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, admissions)
}

// GetAdmissionsByEmail lists the admissions owned by one email. An
// unknown email is an empty array, not an error.
// @Summary List admissions by owner email
// @Tags admissions
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {array} models.Admission
// @Router /mycollege/{email} [get]
func (c *AdmissionController) GetAdmissionsByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	admissions, err := c.admissionService.GetAdmissionsByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, admissions)
}

// GetAdmissionByID returns one admission application
// @Summary Get admission by ID
// @Tags admissions
// @Produce json
// @Param id path int true "Admission ID"
// @Success 200 {object} models.Admission
// @Failure 404 {object} dto.ErrorResponse "Admission not found"
// @Router /myEnrolledCollege/{id} [get]
func (c *AdmissionController) GetAdmissionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	admission, err := c.admissionService.GetAdmissionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, admission)
}

// DeleteAdmission removes an admission. Deleting an absent ID still
// acknowledges with a zero count.
// @Summary Delete an admission
// @Tags admissions
// @Produce json
// @Param id path int true "Admission ID"
// @Success 200 {object} dto.DeleteResult
// @Router /deleteMyCollege/{id} [delete]
func (c *AdmissionController) DeleteAdmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	count, err := c.admissionService.DeleteAdmission(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{Acknowledged: true, DeletedCount: count})
}

// UpdateFeedback merge-sets the review and rating of one admission.
// An absent ID reports zero matched documents.
// @Summary Submit feedback on an admission
// @Tags admissions
// @Accept json
// @Produce json
// @Param id path int true "Admission ID"
// @Param request body dto.FeedbackRequest true "Review and rating"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /feedback/{id} [patch]
func (c *AdmissionController) UpdateFeedback(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid feedback data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	matched, err := c.admissionService.UpdateFeedback(ctx, id, *req.Review, *req.Rating)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: matched,
	})
}
