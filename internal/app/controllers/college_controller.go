package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models/dto"
	"github.com/shariarmdimtiaz/college-booking-server/internal/app/services"
	"github.com/shariarmdimtiaz/college-booking-server/internal/middleware"
)

// CollegeController handles the college catalog: colleges, their
// subjects and their research records.
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// AddCollege creates a new college
// @Summary Create a college
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.AddCollegeRequest true "College information"
// @Success 201 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /addcollege [post]
func (c *CollegeController) AddCollege(ctx *gin.Context) {
	var req dto.AddCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.collegeService.AddCollege(ctx, &models.College{
		Name:          req.Name,
		ImageURL:      req.ImageURL,
		AdmissionDate: req.AdmissionDate,
		EventsCount:   req.EventsCount,
		ResearchCount: req.ResearchCount,
		Sports:        req.Sports,
		Rating:        req.Rating,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InsertResult{Acknowledged: true, InsertedID: id})
}

// GetAllColleges lists the full college catalog
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {array} models.College
// @Router /college [get]
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, colleges)
}

// GetCollegeByID returns one college with all fields
// @Summary Get college details
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} models.College
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /collegeDetails/{id} [get]
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	college, err := c.collegeService.GetCollegeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, college)
}

// GetSubjectsByCollegeID lists the subjects a college offers, projected
// to the reference and name fields. A college with no subjects is an
// empty array.
// @Summary List subjects by college
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {array} models.Subject
// @Router /subjects/{id} [get]
func (c *CollegeController) GetSubjectsByCollegeID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	subjects, err := c.collegeService.GetSubjectsByCollegeID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// GetAllResearch lists every research record
// @Summary List research records
// @Tags research
// @Produce json
// @Success 200 {array} models.Research
// @Router /research [get]
func (c *CollegeController) GetAllResearch(ctx *gin.Context) {
	records, err := c.collegeService.GetAllResearch(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// GetResearchByCollegeID returns one research record for a college,
// projected to its citation fields. This route keeps its one-document
// cardinality.
// @Summary Get research citation by college
// @Tags research
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} models.ResearchCitation
// @Failure 404 {object} dto.ErrorResponse "No research for college"
// @Router /research/{id} [get]
func (c *CollegeController) GetResearchByCollegeID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	citation, err := c.collegeService.GetResearchByCollegeID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, citation)
}
