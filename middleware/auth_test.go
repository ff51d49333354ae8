package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genialityco/events-api/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifierRoundTrip(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	principal, err := JWTVerifier{Secret: testSecret}.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UID)
	assert.Equal(t, "admin", principal.Role)
}

func TestJWTVerifierRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"sub": "user-1"})

	_, err := JWTVerifier{Secret: testSecret}.Verify(token)
	assert.Error(t, err)
}

func TestJWTVerifierRejectsExpired(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := JWTVerifier{Secret: testSecret}.Verify(token)
	assert.Error(t, err)
}

func TestJWTVerifierRequiresSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"role": "admin"})

	_, err := JWTVerifier{Secret: testSecret}.Verify(token)
	assert.Error(t, err)
}

func authRequest(t *testing.T, cfg *config.Config, header string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", Auth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("user_id"), "role": c.GetString("role")})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{Tokens: JWTVerifier{Secret: testSecret}}
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-9", "role": "member"})

	w := authRequest(t, cfg, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-9")
	assert.Contains(t, w.Body.String(), "member")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	cfg := &config.Config{Tokens: JWTVerifier{Secret: testSecret}}

	w := authRequest(t, cfg, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	cfg := &config.Config{Tokens: JWTVerifier{Secret: testSecret}}

	w := authRequest(t, cfg, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
