package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types issued by the Manager.
const (
	TypeAccess       = "access"
	TypeConfirmation = "confirmation"
)

// Claims represents JWT claims structure
type Claims struct {
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	Type     string `json:"type"` // "access" or "confirmation"
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret     string
	accessTTL  time.Duration
	confirmTTL time.Duration
}

// NewManager creates new JWT manager
func NewManager(secret string, accessTTL, confirmTTL time.Duration) *Manager {
	return &Manager{
		secret:     secret,
		accessTTL:  accessTTL,
		confirmTTL: confirmTTL,
	}
}

// GenerateAccessToken generates a signed access token for an authenticated user
func (m *Manager) GenerateAccessToken(userID, username, role string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		Type:     TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// GenerateConfirmationCode generates a signed, time-bound confirmation code
// bound to a single username. The returned jti identifies this code so the
// caller can enforce single-use semantics.
func (m *Manager) GenerateConfirmationCode(username string) (code string, jti string, err error) {
	jti = uuid.NewString()
	claims := Claims{
		Username: username,
		Type:     TypeConfirmation,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.confirmTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	code, err = token.SignedString([]byte(m.secret))
	if err != nil {
		return "", "", err
	}
	return code, jti, nil
}

// ValidateToken validates and parses token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ValidateAccessToken validates access token specifically
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != TypeAccess {
		return nil, fmt.Errorf("invalid token type: expected access, got %s", claims.Type)
	}

	return claims, nil
}

// ValidateConfirmationCode validates a confirmation code and verifies it is
// bound to the given username. A code issued for one username never validates
// for another.
func (m *Manager) ValidateConfirmationCode(code, username string) (*Claims, error) {
	claims, err := m.ValidateToken(code)
	if err != nil {
		return nil, err
	}

	if claims.Type != TypeConfirmation {
		return nil, fmt.Errorf("invalid token type: expected confirmation, got %s", claims.Type)
	}

	if claims.Username != username {
		return nil, fmt.Errorf("confirmation code is not bound to this username")
	}

	return claims, nil
}
