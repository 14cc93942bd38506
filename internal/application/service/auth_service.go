package service

import (
	"crypto/subtle"

	"github.com/santhoshsharuk/billing-api/internal/config"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
	"github.com/santhoshsharuk/billing-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single local operator. There is no user
// table: credentials come from configuration, with a bcrypt hash taking
// precedence over the bootstrap plaintext password.
type AuthService struct {
	username     string
	password     string
	passwordHash string
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.AuthConfig, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
		jwtManager:   jwtManager,
	}
}

// LoginResult carries the issued session token.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login checks the operator credentials and issues a session token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return nil, apperror.ErrInvalidCredentials
	}

	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return nil, apperror.ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(username)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to issue token: "+err.Error())
	}
	return &LoginResult{Token: token, Username: username}, nil
}
