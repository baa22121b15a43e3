package store

import (
	"context"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"

	"gorm.io/gorm"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type userStore struct{ db *gorm.DB }

func NewUserStore(db *gorm.DB) UserStore { return &userStore{db: db} }

func (s *userStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *userStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
