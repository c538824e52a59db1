package repository

import (
	"go-inventory-ledger/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	// FindByName looks a user up by name, additionally scoped to an
	// establishment when one is supplied.
	FindByName(name string, establishmentID *int) (*model.User, error)
	Create(user *model.User) error
	Delete(name string, establishmentID int) error
	FindAll() ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByName(name string, establishmentID *int) (*model.User, error) {
	var user model.User
	q := r.db.Where("name = ?", name)
	if establishmentID != nil {
		q = q.Where("establishment_id = ?", *establishmentID)
	}
	if err := q.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) Delete(name string, establishmentID int) error {
	return r.db.Where("name = ? AND establishment_id = ?", name, establishmentID).
		Delete(&model.User{}).Error
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
