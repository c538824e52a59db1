package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-inventory-ledger/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authentication token")
)

// TokenTTL is the fixed session lifetime. Expiry is terminal: there is no
// refresh or revocation, the client must log in again.
const TokenTTL = 24 * time.Hour

// Claims is the signed payload carried by the session cookie.
type Claims struct {
	Username        string     `json:"username"`
	Role            model.Role `json:"role"`
	EstablishmentID *int       `json:"establishmentId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens. The secret is injected at
// construction; nothing here touches the environment.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService builds a TokenService with the standard 24h lifetime.
func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    TokenTTL,
	}
}

// Generate creates a signed session token for a user.
func (s *TokenService) Generate(username string, role model.Role, establishmentID *int) (string, error) {
	claims := &Claims{
		Username:        username,
		Role:            role,
		EstablishmentID: establishmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a session token.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
