package account

import (
	"time"

	"github.com/MRigonM/EmployeeManagement/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs the bearer tokens handed out on login: HMAC-SHA-256,
// fixed two-hour validity, deployment-configured issuer and audience that
// every consumer must validate.
type TokenIssuer struct {
	cfg config.JWT
}

func NewTokenIssuer(cfg config.JWT) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

func (t *TokenIssuer) Issue(userID uuid.UUID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"role":  role,
		"iss":   t.cfg.Issuer,
		"aud":   t.cfg.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(t.cfg.Expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.cfg.Secret))
}
