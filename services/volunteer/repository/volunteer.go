package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"volunteer/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type volunteerRepository struct {
	db *pgxpool.Pool
}

func NewVolunteerRepository(database *pgxpool.Pool) domain.VolunteerRepo {
	return &volunteerRepository{
		db: database,
	}
}

// uniqueViolation reports whether the unique index on LOWER(email) rejected
// the statement. The index makes check-and-insert a single atomic operation.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (vr *volunteerRepository) CreateVolunteer(ctx context.Context, volunteer *domain.Volunteer) error {
	insertQuery := `
		INSERT INTO volunteers (name, email, role, available, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING volunteer_id;
	`

	now := time.Now()
	volunteer.Email = strings.ToLower(volunteer.Email)

	var id int
	err := vr.db.QueryRow(ctx, insertQuery, volunteer.Name, volunteer.Email, volunteer.Role, volunteer.Available, domain.StatusActive, now, now).Scan(&id)
	if err != nil {
		if uniqueViolation(err) {
			return fmt.Errorf("volunteer with email %s: %w", volunteer.Email, domain.ErrDuplicateEmail)
		}
		return fmt.Errorf("could not insert volunteer: %v", err)
	}

	volunteer.VolunteerID = id
	volunteer.Status = domain.StatusActive
	volunteer.CreatedAt = now
	volunteer.UpdatedAt = now

	return nil
}

func (vr *volunteerRepository) GetAllVolunteer(ctx context.Context, filter *domain.VolunteerFilter) (*[]domain.Volunteer, error) {
	query := `
		SELECT volunteer_id, name, email, role, available, status, created_at, updated_at
		FROM volunteers
	`

	var conditions []string
	var args []interface{}

	// Default listing hides soft-deleted records; status=all lifts that.
	switch filter.Status {
	case "", domain.StatusActive:
		args = append(args, domain.StatusActive)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	case domain.StatusInactive:
		args = append(args, domain.StatusInactive)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	case "all":
	default:
		return nil, fmt.Errorf("invalid status filter: %s", filter.Status)
	}

	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}

	if filter.Available != nil {
		args = append(args, *filter.Available)
		conditions = append(conditions, fmt.Sprintf("available = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY volunteer_id"

	// A zero-value filter should list, not LIMIT 0
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := vr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get all volunteers: %v", err)
	}
	defer rows.Close()

	volunteers := []domain.Volunteer{}
	for rows.Next() {
		var volunteer domain.Volunteer

		err := rows.Scan(&volunteer.VolunteerID, &volunteer.Name, &volunteer.Email, &volunteer.Role, &volunteer.Available, &volunteer.Status, &volunteer.CreatedAt, &volunteer.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan volunteer: %v", err)
		}

		volunteers = append(volunteers, volunteer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &volunteers, nil
}

func (vr *volunteerRepository) GetVolunteerByID(ctx context.Context, id int) (*domain.Volunteer, error) {
	query := `
		SELECT volunteer_id, name, email, role, available, status, created_at, updated_at
		FROM volunteers
		WHERE volunteer_id = $1;
	`

	var volunteer domain.Volunteer

	err := vr.db.QueryRow(ctx, query, id).Scan(
		&volunteer.VolunteerID, &volunteer.Name, &volunteer.Email, &volunteer.Role, &volunteer.Available, &volunteer.Status, &volunteer.CreatedAt, &volunteer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("could not get volunteer: %v", err)
	}

	return &volunteer, nil
}

// UpdateVolunteer applies the payload in one statement. Unsupplied fields
// keep their stored value, so a concurrent writer's commit is never
// overwritten with a stale snapshot.
func (vr *volunteerRepository) UpdateVolunteer(ctx context.Context, id int, payload *domain.VolunteerUpdatePayload) (*domain.Volunteer, error) {
	query := `
		UPDATE volunteers
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    role = COALESCE($3, role),
		    available = COALESCE($4, available),
		    updated_at = $5
		WHERE volunteer_id = $6
		RETURNING volunteer_id, name, email, role, available, status, created_at, updated_at;
	`

	var email *string
	if payload.Email != nil {
		lowered := strings.ToLower(*payload.Email)
		email = &lowered
	}

	now := time.Now()

	var volunteer domain.Volunteer
	err := vr.db.QueryRow(ctx, query, payload.Name, email, payload.Role, payload.Available, now, id).Scan(
		&volunteer.VolunteerID, &volunteer.Name, &volunteer.Email, &volunteer.Role, &volunteer.Available, &volunteer.Status, &volunteer.CreatedAt, &volunteer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVolunteerNotFound
		}
		if uniqueViolation(err) {
			return nil, fmt.Errorf("volunteer with email %s: %w", *email, domain.ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("could not update volunteer: %v", err)
	}

	return &volunteer, nil
}

func (vr *volunteerRepository) DeleteVolunteer(ctx context.Context, id int) (*domain.Volunteer, error) {
	return vr.setStatus(ctx, id, domain.StatusInactive)
}

func (vr *volunteerRepository) RestoreVolunteer(ctx context.Context, id int) (*domain.Volunteer, error) {
	return vr.setStatus(ctx, id, domain.StatusActive)
}

// setStatus is idempotent: flipping to the current status still succeeds and
// stamps updated_at.
func (vr *volunteerRepository) setStatus(ctx context.Context, id int, status string) (*domain.Volunteer, error) {
	query := `
		UPDATE volunteers
		SET status = $1, updated_at = $2
		WHERE volunteer_id = $3
		RETURNING volunteer_id, name, email, role, available, status, created_at, updated_at;
	`

	now := time.Now()

	var volunteer domain.Volunteer
	err := vr.db.QueryRow(ctx, query, status, now, id).Scan(
		&volunteer.VolunteerID, &volunteer.Name, &volunteer.Email, &volunteer.Role, &volunteer.Available, &volunteer.Status, &volunteer.CreatedAt, &volunteer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("could not set volunteer status: %v", err)
	}

	return &volunteer, nil
}
