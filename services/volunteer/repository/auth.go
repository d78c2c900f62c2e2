package repository

import (
	"context"
	"errors"
	"fmt"
	"volunteer/domain"
	"volunteer/middleware"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: db,
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	var user domain.User

	err := ar.db.WithContext(ctx).Where("username = ?", data.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInvalidCredentials
	} else if err != nil {
		// Storage failures must not read as a rejected login
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := middleware.GenerateJWT(user.UserID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token, err : %v", err)
	}

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (ar *authRepository) CreateStaff(ctx context.Context, payload *domain.User) error {
	var existing domain.User

	err := ar.db.WithContext(ctx).Where("username = ?", payload.Username).First(&existing).Error
	if err == nil {
		return fmt.Errorf("user with username %s already exists", payload.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking username: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %v", err)
	}
	payload.Password = string(hashed)

	if err := ar.db.WithContext(ctx).Create(payload).Error; err != nil {
		return fmt.Errorf("could not create staff: %v", err)
	}

	return nil
}
