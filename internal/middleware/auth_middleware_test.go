package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MRigonM/EmployeeManagement/internal/middleware"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"
	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authTestConfig = config.JWT{
	Secret:   "test-secret",
	Issuer:   "EmployeeManagement",
	Audience: "EmployeeManagementClient",
	Expiry:   2 * time.Hour,
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "arta@company.com",
		"role":  "Employee",
		"iss":   authTestConfig.Issuer,
		"aud":   authTestConfig.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(2 * time.Hour).Unix(),
	}
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", middleware.Auth(authTestConfig), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return r
}

func probe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func firstErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var errs []result.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errs))
	require.NotEmpty(t, errs)
	return errs[0].Code
}

func TestAuth(t *testing.T) {
	r := setupAuthRouter()

	t.Run("valid token passes and exposes the role", func(t *testing.T) {
		token := signToken(t, validClaims(), authTestConfig.Secret)

		w := probe(r, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee")
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := probe(r, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Account.Unauthorized", firstErrorCode(t, w))
	})

	t.Run("non-bearer scheme is unauthorized", func(t *testing.T) {
		w := probe(r, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Account.Unauthorized", firstErrorCode(t, w))
	})

	t.Run("expired token has its own code", func(t *testing.T) {
		claims := validClaims()
		claims["iat"] = time.Now().Add(-3 * time.Hour).Unix()
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		token := signToken(t, claims, authTestConfig.Secret)

		w := probe(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Account.TokenExpired", firstErrorCode(t, w))
	})

	t.Run("wrong signing secret is invalid", func(t *testing.T) {
		token := signToken(t, validClaims(), "other-secret")

		w := probe(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Account.InvalidToken", firstErrorCode(t, w))
	})

	t.Run("foreign issuer is invalid", func(t *testing.T) {
		claims := validClaims()
		claims["iss"] = "SomeOtherSystem"
		token := signToken(t, claims, authTestConfig.Secret)

		w := probe(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Account.InvalidToken", firstErrorCode(t, w))
	})

	t.Run("missing role claim is invalid", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "role")
		token := signToken(t, claims, authTestConfig.Secret)

		w := probe(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Account.InvalidToken", firstErrorCode(t, w))
	})

	t.Run("token without expiry is invalid", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "exp")
		token := signToken(t, claims, authTestConfig.Secret)

		w := probe(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Account.InvalidToken", firstErrorCode(t, w))
	})
}
