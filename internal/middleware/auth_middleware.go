package middleware

import (
	"errors"
	"strings"

	"github.com/MRigonM/EmployeeManagement/internal/shared/config"
	"github.com/MRigonM/EmployeeManagement/internal/shared/contextutil"
	"github.com/MRigonM/EmployeeManagement/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Auth validates the bearer token and places its claims in the request
// context. Signature method, issuer and audience are all enforced; tokens
// from other deployments are rejected.
func Auth(cfg config.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Unauthorized(c, "Account.Unauthorized", "Authentication token not found.")
			return
		}

		token, err := jwt.Parse(tokenString,
			func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, "Account.TokenExpired", "The authentication token has expired.")
				return
			}
			response.Unauthorized(c, "Account.InvalidToken", "The authentication token is invalid.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c, "Account.InvalidToken", "The authentication token is invalid.")
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || role == "" {
			response.Unauthorized(c, "Account.InvalidToken", "The authentication token is missing required claims.")
			return
		}

		c.Set("user_id", sub)
		c.Set("email", email)
		c.Set("role", role)

		ctx := contextutil.WithUserID(c.Request.Context(), sub)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
