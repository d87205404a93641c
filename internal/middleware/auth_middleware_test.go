package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUserFinder reports registration from a fixed set
type fakeUserFinder struct {
	registered map[string]bool
	err        error
}

func (f *fakeUserFinder) EmailExists(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.registered[email], nil
}

func newGateRouter(m *AuthMiddleware, handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		email := c.GetString(ContextKeyEmail)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	router.GET("/protected", chain...)
	return router
}

func newTokenService() *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{
		SecretKey:   "gate-test-secret",
		TokenExp:    5 * time.Hour,
		TokenIssuer: "college-booking.test",
	})
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTokenService(), &fakeUserFinder{})
	router := newGateRouter(m, m.JWTAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(newTokenService(), &fakeUserFinder{})
	router := newGateRouter(m, m.JWTAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "token-without-bearer-prefix")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(newTokenService(), &fakeUserFinder{})
	router := newGateRouter(m, m.JWTAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredSvc := auth.NewTokenService(auth.TokenConfig{
		SecretKey: "gate-test-secret",
		TokenExp:  -time.Hour,
	})
	token, err := expiredSvc.Issue(&auth.Claims{Email: "a@x.com"})
	require.NoError(t, err)

	m := NewAuthMiddleware(newTokenService(), &fakeUserFinder{})
	router := newGateRouter(m, m.JWTAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestJWTAuth_ValidTokenSetsClaims(t *testing.T) {
	svc := newTokenService()
	token, err := svc.Issue(&auth.Claims{Email: "a@x.com"})
	require.NoError(t, err)

	m := NewAuthMiddleware(svc, &fakeUserFinder{})
	router := newGateRouter(m, m.JWTAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestRegisteredUser_UnknownEmailForbidden(t *testing.T) {
	svc := newTokenService()
	token, err := svc.Issue(&auth.Claims{Email: "ghost@x.com"})
	require.NoError(t, err)

	m := NewAuthMiddleware(svc, &fakeUserFinder{registered: map[string]bool{}})
	router := newGateRouter(m, m.JWTAuth(), m.RegisteredUser())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisteredUser_KnownEmailPasses(t *testing.T) {
	svc := newTokenService()
	token, err := svc.Issue(&auth.Claims{Email: "a@x.com"})
	require.NoError(t, err)

	m := NewAuthMiddleware(svc, &fakeUserFinder{registered: map[string]bool{"a@x.com": true}})
	router := newGateRouter(m, m.JWTAuth(), m.RegisteredUser())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisteredUser_WithoutPriorAuthentication(t *testing.T) {
	m := NewAuthMiddleware(newTokenService(), &fakeUserFinder{registered: map[string]bool{"a@x.com": true}})
	router := newGateRouter(m, m.RegisteredUser())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisteredUser_LookupFailure(t *testing.T) {
	svc := newTokenService()
	token, err := svc.Issue(&auth.Claims{Email: "a@x.com"})
	require.NoError(t, err)

	m := NewAuthMiddleware(svc, &fakeUserFinder{err: errors.New("store down")})
	router := newGateRouter(m, m.JWTAuth(), m.RegisteredUser())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "store down")
}
