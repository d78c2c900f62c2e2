package domain

import (
	"context"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Volunteer struct {
	VolunteerID int       `json:"volunteer_id"`
	Name        string    `json:"name" valid:"required~Name is required"`
	Email       string    `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Role        string    `json:"role" valid:"required~Role is required"`
	Available   bool      `json:"available"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VolunteerUpdatePayload struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Available *bool   `json:"available"`
}

// VolunteerFilter predicates are conjunctive. Status accepts active,
// inactive or all; empty means active only.
type VolunteerFilter struct {
	Status    string
	Role      string
	Available *bool
	Skip      int
	Limit     int
}

type VolunteerRepo interface {
	CreateVolunteer(ctx context.Context, volunteer *Volunteer) error
	GetAllVolunteer(ctx context.Context, filter *VolunteerFilter) (*[]Volunteer, error)
	GetVolunteerByID(ctx context.Context, id int) (*Volunteer, error)
	UpdateVolunteer(ctx context.Context, id int, payload *VolunteerUpdatePayload) (*Volunteer, error)
	DeleteVolunteer(ctx context.Context, id int) (*Volunteer, error)
	RestoreVolunteer(ctx context.Context, id int) (*Volunteer, error)
}

type VolunteerUseCase interface {
	CreateVolunteerUC(ctx context.Context, volunteer *Volunteer) error
	GetAllVolunteerUC(ctx context.Context, filter *VolunteerFilter) (*[]Volunteer, error)
	GetVolunteerByIDUC(ctx context.Context, id int) (*Volunteer, error)
	UpdateVolunteerUC(ctx context.Context, id int, payload *VolunteerUpdatePayload) (*Volunteer, error)
	DeleteVolunteerUC(ctx context.Context, id int) (*Volunteer, error)
	RestoreVolunteerUC(ctx context.Context, id int) (*Volunteer, error)
}
