package usecase

import (
	"context"
	"time"
	"volunteer/domain"
)

type authUC struct {
	authRepo domain.AuthRepo
	TimeOut  time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
		TimeOut:  timeOut,
	}
}

func (aUC *authUC) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	res, err := aUC.authRepo.Login(ctx, data)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (aUC *authUC) CreateStaff(ctx context.Context, payload *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	err := aUC.authRepo.CreateStaff(ctx, payload)
	if err != nil {
		return err
	}
	return nil
}
