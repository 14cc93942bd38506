package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OperatorClaims represents the claims in an operator session token.
// This is a single-operator application, so the claims carry only the
// operator name.
type OperatorClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager handles session token generation and validation
type JWTManager struct {
	secretKey []byte
	expiry    time.Duration
	issuer    string
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret, issuer string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secret),
		expiry:    expiry,
		issuer:    issuer,
	}
}

// GenerateToken generates a new session token for the operator
func (m *JWTManager) GenerateToken(username string) (string, error) {
	claims := &OperatorClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    m.issuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// ValidateToken validates a session token and returns the claims
func (m *JWTManager) ValidateToken(tokenString string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
