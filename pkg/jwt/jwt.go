package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired, malformed, or a claim that does not parse. Callers get one
// answer, not a hint about which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Claims carries the single identity claim embedded in every token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies bearer tokens with a server-held secret.
// Verification is a pure function of the token and the secret; no
// store lookup happens here.
type Manager struct {
	secret string
	ttl    time.Duration
}

// NewManager creates a manager issuing tokens with the default 7-day TTL.
func NewManager(secret string) *Manager {
	return &Manager{secret: secret, ttl: DefaultTTL}
}

// NewManagerWithTTL creates a manager with a custom validity window.
func NewManagerWithTTL(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Generate issues a signed HS256 token whose sole custom claim is the
// user's id.
func (m *Manager) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Verify checks signature and expiry and returns the embedded user id.
func (m *Manager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
