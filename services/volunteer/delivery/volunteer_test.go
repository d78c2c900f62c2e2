package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"
	"volunteer/config"
	"volunteer/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockVolunteerUC implements a test double for domain.VolunteerUseCase
type mockVolunteerUC struct {
	createErr  error
	created    []*domain.Volunteer
	volunteers []domain.Volunteer
	listErr    error
	lastFilter *domain.VolunteerFilter
	byID       map[int]*domain.Volunteer
	updateErr  error
	updated    *domain.Volunteer
	statusErr  error
	statusRec  *domain.Volunteer
}

func (m *mockVolunteerUC) CreateVolunteerUC(ctx context.Context, volunteer *domain.Volunteer) error {
	if m.createErr != nil {
		return m.createErr
	}
	volunteer.VolunteerID = len(m.created) + 1
	volunteer.Status = domain.StatusActive
	volunteer.CreatedAt = time.Now()
	volunteer.UpdatedAt = volunteer.CreatedAt
	m.created = append(m.created, volunteer)
	return nil
}

func (m *mockVolunteerUC) GetAllVolunteerUC(ctx context.Context, filter *domain.VolunteerFilter) (*[]domain.Volunteer, error) {
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return &m.volunteers, nil
}

func (m *mockVolunteerUC) GetVolunteerByIDUC(ctx context.Context, id int) (*domain.Volunteer, error) {
	if v, ok := m.byID[id]; ok {
		return v, nil
	}
	return nil, domain.ErrVolunteerNotFound
}

func (m *mockVolunteerUC) UpdateVolunteerUC(ctx context.Context, id int, payload *domain.VolunteerUpdatePayload) (*domain.Volunteer, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updated, nil
}

func (m *mockVolunteerUC) DeleteVolunteerUC(ctx context.Context, id int) (*domain.Volunteer, error) {
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	m.statusRec.Status = domain.StatusInactive
	return m.statusRec, nil
}

func (m *mockVolunteerUC) RestoreVolunteerUC(ctx context.Context, id int) (*domain.Volunteer, error) {
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	m.statusRec.Status = domain.StatusActive
	return m.statusRec, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(uc domain.VolunteerUseCase) *fiber.App {
	app := fiber.New(config.GetFiberConfig())
	NewVolunteerHandler(app, uc)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))

	return resp.StatusCode, env
}

func TestRegisterVolunteer_Success(t *testing.T) {
	uc := &mockVolunteerUC{}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "POST", "/volunteer/insert", fiber.Map{
		"name":      "Ana Silva",
		"email":     "ana@org.org",
		"role":      "coordinator",
		"available": true,
	})

	require.Equal(t, fiber.StatusCreated, status)
	assert.True(t, env.Success)

	var created domain.Volunteer
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 1, created.VolunteerID)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.Equal(t, "ana@org.org", created.Email)
	assert.True(t, created.Available)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestRegisterVolunteer_InvalidEmail(t *testing.T) {
	uc := &mockVolunteerUC{}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "POST", "/volunteer/insert", fiber.Map{
		"name":  "Ana Silva",
		"email": "not-an-email",
		"role":  "coordinator",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Empty(t, uc.created)
}

func TestRegisterVolunteer_MissingName(t *testing.T) {
	uc := &mockVolunteerUC{}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "POST", "/volunteer/insert", fiber.Map{
		"email": "ana@org.org",
		"role":  "coordinator",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Empty(t, uc.created)
}

func TestRegisterVolunteer_DuplicateEmail(t *testing.T) {
	uc := &mockVolunteerUC{createErr: domain.ErrDuplicateEmail}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "POST", "/volunteer/insert", fiber.Map{
		"name":  "Ana Silva",
		"email": "ana@org.org",
		"role":  "coordinator",
	})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestGetAllVolunteer_DefaultFilter(t *testing.T) {
	uc := &mockVolunteerUC{volunteers: []domain.Volunteer{}}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "GET", "/volunteer/get_all", nil)

	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	require.NotNil(t, uc.lastFilter)
	assert.Equal(t, "", uc.lastFilter.Status)
	assert.Equal(t, "", uc.lastFilter.Role)
	assert.Nil(t, uc.lastFilter.Available)
	assert.Equal(t, 0, uc.lastFilter.Skip)
	assert.Equal(t, 100, uc.lastFilter.Limit)
}

func TestGetAllVolunteer_ConjunctiveFilters(t *testing.T) {
	uc := &mockVolunteerUC{volunteers: []domain.Volunteer{}}
	app := newTestApp(uc)

	status, _ := doJSON(t, app, "GET", "/volunteer/get_all?status=inactive&role=coordinator&available=true&skip=5&limit=10", nil)

	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, uc.lastFilter)
	assert.Equal(t, domain.StatusInactive, uc.lastFilter.Status)
	assert.Equal(t, "coordinator", uc.lastFilter.Role)
	require.NotNil(t, uc.lastFilter.Available)
	assert.True(t, *uc.lastFilter.Available)
	assert.Equal(t, 5, uc.lastFilter.Skip)
	assert.Equal(t, 10, uc.lastFilter.Limit)
}

func TestGetAllVolunteer_InvalidStatus(t *testing.T) {
	uc := &mockVolunteerUC{}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "GET", "/volunteer/get_all?status=archived", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Nil(t, uc.lastFilter)
}

func TestGetAllVolunteer_InvalidAvailable(t *testing.T) {
	uc := &mockVolunteerUC{}
	app := newTestApp(uc)

	status, _ := doJSON(t, app, "GET", "/volunteer/get_all?available=maybe", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetAllVolunteer_InvalidPagination(t *testing.T) {
	uc := &mockVolunteerUC{}
	app := newTestApp(uc)

	status, _ := doJSON(t, app, "GET", "/volunteer/get_all?limit=5000", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "GET", "/volunteer/get_all?skip=-1", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetAllVolunteer_StoreFailure(t *testing.T) {
	uc := &mockVolunteerUC{listErr: errors.New("connection reset")}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "GET", "/volunteer/get_all", nil)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, env.Success)
}

func TestGetVolunteerByID_Found(t *testing.T) {
	stored := &domain.Volunteer{
		VolunteerID: 7,
		Name:        "Ana Silva",
		Email:       "ana@org.org",
		Role:        "coordinator",
		Status:      domain.StatusInactive,
	}
	uc := &mockVolunteerUC{byID: map[int]*domain.Volunteer{7: stored}}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "GET", "/volunteer/get/7", nil)

	require.Equal(t, fiber.StatusOK, status)

	var got domain.Volunteer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 7, got.VolunteerID)
	// Inactive records remain retrievable by direct lookup
	assert.Equal(t, domain.StatusInactive, got.Status)
}

func TestGetVolunteerByID_NotFound(t *testing.T) {
	uc := &mockVolunteerUC{byID: map[int]*domain.Volunteer{}}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "GET", "/volunteer/get/99", nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestModifyVolunteer_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		updateErr  error
		wantStatus int
	}{
		{"not found", domain.ErrVolunteerNotFound, fiber.StatusNotFound},
		{"validation", domain.ErrValidation, fiber.StatusBadRequest},
		{"duplicate email", domain.ErrDuplicateEmail, fiber.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockVolunteerUC{updateErr: tt.updateErr}
			app := newTestApp(uc)

			status, env := doJSON(t, app, "PUT", "/volunteer/modify/1", fiber.Map{
				"email": "new@org.org",
			})

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, env.Success)
		})
	}
}

func TestModifyVolunteer_Success(t *testing.T) {
	updated := &domain.Volunteer{
		VolunteerID: 1,
		Name:        "Ana Silva",
		Email:       "new@org.org",
		Role:        "coordinator",
		Status:      domain.StatusActive,
	}
	uc := &mockVolunteerUC{updated: updated}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "PUT", "/volunteer/modify/1", fiber.Map{
		"email": "new@org.org",
	})

	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)

	var got domain.Volunteer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "new@org.org", got.Email)
}

func TestDeleteVolunteer_Success(t *testing.T) {
	uc := &mockVolunteerUC{statusRec: &domain.Volunteer{VolunteerID: 1, Status: domain.StatusActive}}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "DELETE", "/volunteer/rm/1", nil)

	require.Equal(t, fiber.StatusOK, status)

	var got domain.Volunteer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, domain.StatusInactive, got.Status)
}

func TestDeleteVolunteer_NotFound(t *testing.T) {
	uc := &mockVolunteerUC{statusErr: domain.ErrVolunteerNotFound}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "DELETE", "/volunteer/rm/42", nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestRestoreVolunteer_Success(t *testing.T) {
	uc := &mockVolunteerUC{statusRec: &domain.Volunteer{VolunteerID: 1, Status: domain.StatusInactive}}
	app := newTestApp(uc)

	status, env := doJSON(t, app, "POST", "/volunteer/restore/1", nil)

	require.Equal(t, fiber.StatusOK, status)

	var got domain.Volunteer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, domain.StatusActive, got.Status)
}
