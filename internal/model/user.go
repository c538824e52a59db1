package model

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
)

// User represents an authenticated staff member. Uniqueness is scoped by
// (name, establishment_id) so the same name may exist at different sites.
type User struct {
	BaseModel
	Name            string `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_name_establishment" json:"name" validate:"required"`
	Password        string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role            Role   `gorm:"type:varchar(50);not null" json:"role" validate:"required"`
	EstablishmentID *int   `gorm:"uniqueIndex:idx_users_name_establishment" json:"establishmentId"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without the password hash)
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Role            Role      `json:"role"`
	EstablishmentID *int      `json:"establishmentId"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Role:            u.Role,
		EstablishmentID: u.EstablishmentID,
	}
}
