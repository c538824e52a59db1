package service

import (
	"errors"

	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/repository"
	"go-inventory-ledger/pkg/validator"
)

var (
	ErrMissingFields = errors.New("missing required fields: name, password, role")
	ErrUserExists    = errors.New("User already exists")
	ErrInvalidRole   = errors.New("unknown role")
)

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	GetAllUsers() ([]model.UserResponse, error)
	DeleteUser(name string, establishmentID int) error
}

type CreateUserRequest struct {
	Name            string     `json:"name" validate:"required"`
	Password        string     `json:"password" validate:"required"`
	Role            model.Role `json:"role" validate:"required"`
	EstablishmentID *int       `json:"establishmentId"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	// 1. Required fields
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, ErrMissingFields
	}

	// 2. Roles are a closed set
	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	// 3. Reject duplicates scoped by (name, establishment)
	existing, _ := s.userRepo.FindByName(req.Name, req.EstablishmentID)
	if existing != nil {
		return nil, ErrUserExists
	}

	// 4. Hash and persist
	user := &model.User{
		Name:            req.Name,
		Role:            req.Role,
		EstablishmentID: req.EstablishmentID,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) DeleteUser(name string, establishmentID int) error {
	return s.userRepo.Delete(name, establishmentID)
}
