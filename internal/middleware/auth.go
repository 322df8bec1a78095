package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/authn"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
)

const (
	ContextUserID = "userID"
	ContextClaims = "claims"
)

// AuthMiddleware accepts a bearer token that is correctly signed, not
// signed out, and issued at the user's current token version.
func AuthMiddleware(tokens *authn.Tokens, sessions *authn.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abortUnauthorized(c, httperr.CodeInvalidToken)
			return
		}

		ctx := c.Request.Context()
		if sessions.IsRevoked(ctx, claims.ID) {
			abortUnauthorized(c, httperr.CodeInvalidToken)
			return
		}

		version, err := sessions.CurrentVersion(ctx, claims.Subject)
		if err != nil || version != claims.Version {
			abortUnauthorized(c, httperr.CodeInvalidToken)
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Sessão expirada. Faça login novamente.")
	c.Abort()
}

// UserID returns the authenticated operator, or "" outside secured routes.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func Claims(c *gin.Context) *authn.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*authn.Claims)
	return claims
}
