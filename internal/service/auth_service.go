package service

import (
	"errors"

	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/repository"
	"go-inventory-ledger/pkg/jwt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
)

type AuthService interface {
	Login(name, password string, establishmentID *int) (*LoginResponse, error)
}

// LoginResponse carries the signed session token plus the plain profile
// fields the client needs. The HTTP layer puts the token in a cookie.
type LoginResponse struct {
	Token           string     `json:"-"`
	Username        string     `json:"username"`
	Role            model.Role `json:"role"`
	EstablishmentID *int       `json:"establishmentId"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(name, password string, establishmentID *int) (*LoginResponse, error) {
	// 1. Find user by name, scoped to establishment when supplied
	user, err := s.userRepo.FindByName(name, establishmentID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 2. Verify password
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Issue signed claims with the fixed 24h expiry
	token, err := s.tokens.Generate(user.Name, user.Role, user.EstablishmentID)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:           token,
		Username:        user.Name,
		Role:            user.Role,
		EstablishmentID: user.EstablishmentID,
	}, nil
}
