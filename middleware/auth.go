package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/genialityco/events-api/config"
)

// Auth verifies the bearer token through the injected verifier and attaches
// the principal to the request context.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		principal, err := cfg.Tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", principal.UID)
		c.Set("role", principal.Role)
		c.Next()
	}
}

// JWTVerifier validates HMAC-signed tokens issued by the identity provider.
type JWTVerifier struct {
	Secret string
}

func (v JWTVerifier) Verify(token string) (*config.Principal, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(v.Secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	principal := &config.Principal{}
	if sub, ok := claims["sub"].(string); ok {
		principal.UID = sub
	}
	if role, ok := claims["role"].(string); ok {
		principal.Role = role
	}
	if principal.UID == "" {
		return nil, errors.New("token has no subject")
	}
	return principal, nil
}
