package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models/dto"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/auth"
)

// Context keys populated by JWTAuth
const (
	ContextKeyEmail  = "email"
	ContextKeyClaims = "claims"
)

// UserFinder checks whether an email belongs to a registered user
type UserFinder interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthMiddleware is the two-step access gate: token authentication
// followed by registered-user authorization.
type AuthMiddleware struct {
	tokenService *auth.TokenService
	userFinder   UserFinder
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokenService *auth.TokenService, userFinder UserFinder) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userFinder:   userFinder,
	}
}

// JWTAuth validates the bearer token on the Authorization header and, on
// success, attaches the verified claims to the request context. A
// missing, malformed, invalid or expired token ends the request with 401.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.tokenService.Verify(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").
				WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RegisteredUser requires that the authenticated email belongs to a
// registered user record. JWTAuth must run first; a request reaching this
// check without claims is rejected as unauthenticated.
func (m *AuthMiddleware) RegisteredUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(ContextKeyEmail)
		emailStr, ok := email.(string)
		if !exists || !ok || emailStr == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("No authenticated identity on request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		registered, err := m.userFinder.EmailExists(c.Request.Context(), emailStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		if !registered {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Forbidden").
				WithDetails("No registered user for the authenticated identity")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
