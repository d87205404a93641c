package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models/dto"
	"github.com/shariarmdimtiaz/college-booking-server/internal/app/services"
	"github.com/shariarmdimtiaz/college-booking-server/internal/middleware"
)

// duplicateUserMessage is part of the client contract for /addUser.
const duplicateUserMessage = "User already exists!"

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// parseIDParam parses the :id path parameter. A non-numeric id is a
// validation failure, not a store error.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id").
			WithDetails("id must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetAllUsers lists every registered user
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// IsUser probes whether an email belongs to a registered user. The probe
// is always a success response; absence is `{"result": false}`.
// @Summary Check user existence by email
// @Tags users
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} dto.ExistsResult
// @Router /isUser/{email} [get]
func (c *UserController) IsUser(ctx *gin.Context) {
	email := ctx.Param("email")

	exists, err := c.userService.IsUser(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExistsResult{Result: exists})
}

// AddUser registers a user unless the email is already taken. The
// duplicate notice is a success-shaped message, not an error status.
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.AddUserRequest true "User profile"
// @Success 201 {object} dto.InsertResult
// @Success 200 {object} dto.MessageResponse "Email already registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /addUser [post]
func (c *UserController) AddUser(ctx *gin.Context) {
	var req dto.AddUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, created, err := c.userService.AddUser(ctx, &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: duplicateUserMessage})
		return
	}

	ctx.JSON(http.StatusCreated, dto.InsertResult{Acknowledged: true, InsertedID: id})
}

// DeleteUser removes a user by id. Deleting a missing id acknowledges a
// zero count instead of failing.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	count, err := c.userService.DeleteUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResult{Acknowledged: true, DeletedCount: count})
}
