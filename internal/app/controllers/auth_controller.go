package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models/dto"
	"github.com/shariarmdimtiaz/college-booking-server/internal/middleware"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/auth"
)

// AuthController handles token issuance
type AuthController struct {
	tokenService *auth.TokenService
}

// NewAuthController creates a new AuthController
func NewAuthController(tokenService *auth.TokenService) *AuthController {
	return &AuthController{
		tokenService: tokenService,
	}
}

// IssueToken signs the caller-supplied claims into a time-limited token.
// @Summary Issue an access token
// @Description Signs the request claims into a bearer token with a fixed lifetime
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Identity claims"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /jwt [post]
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid token request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.tokenService.Issue(&auth.Claims{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
