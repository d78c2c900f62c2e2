package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"volunteer/config"
	"volunteer/domain"

	"github.com/asaskevich/govalidator"
)

type volunteerUC struct {
	volunteerRepo domain.VolunteerRepo
	TimeOut       time.Duration
}

func NewVolunteerUseCase(repo domain.VolunteerRepo, timeOut time.Duration) domain.VolunteerUseCase {
	return &volunteerUC{
		volunteerRepo: repo,
		TimeOut:       timeOut,
	}
}

func (vUC *volunteerUC) CreateVolunteerUC(ctx context.Context, volunteer *domain.Volunteer) error {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	err := vUC.volunteerRepo.CreateVolunteer(ctx, volunteer)
	if err != nil {
		return err
	}

	if config.EmailerReady() {
		go func(name, email, role string) {
			if err := config.SendWelcomeEmail(name, email, role); err != nil {
				config.GetLogrusInstance().Warnf("failed to send welcome email to %s: %v", email, err)
			}
		}(volunteer.Name, volunteer.Email, volunteer.Role)
	}

	return nil
}

func (vUC *volunteerUC) GetAllVolunteerUC(ctx context.Context, filter *domain.VolunteerFilter) (*[]domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	volunteers, err := vUC.volunteerRepo.GetAllVolunteer(ctx, filter)
	if err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (vUC *volunteerUC) GetVolunteerByIDUC(ctx context.Context, id int) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	volunteer, err := vUC.volunteerRepo.GetVolunteerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return volunteer, nil
}

// UpdateVolunteerUC validates only the supplied fields and hands the payload
// to the store as-is; the single-statement update there keeps partial
// patches from clobbering concurrent writes.
func (vUC *volunteerUC) UpdateVolunteerUC(ctx context.Context, id int, payload *domain.VolunteerUpdatePayload) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return nil, fmt.Errorf("%w: Name is required", domain.ErrValidation)
	}
	if payload.Email != nil {
		trimmed := strings.TrimSpace(*payload.Email)
		if !govalidator.IsEmail(trimmed) {
			return nil, fmt.Errorf("%w: Invalid email format", domain.ErrValidation)
		}
		payload.Email = &trimmed
	}
	if payload.Role != nil && strings.TrimSpace(*payload.Role) == "" {
		return nil, fmt.Errorf("%w: Role is required", domain.ErrValidation)
	}

	volunteer, err := vUC.volunteerRepo.UpdateVolunteer(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	return volunteer, nil
}

func (vUC *volunteerUC) DeleteVolunteerUC(ctx context.Context, id int) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	volunteer, err := vUC.volunteerRepo.DeleteVolunteer(ctx, id)
	if err != nil {
		return nil, err
	}
	return volunteer, nil
}

func (vUC *volunteerUC) RestoreVolunteerUC(ctx context.Context, id int) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	volunteer, err := vUC.volunteerRepo.RestoreVolunteer(ctx, id)
	if err != nil {
		return nil, err
	}
	return volunteer, nil
}
