package request

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/event"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
	"github.com/jwalitptl/bloodbank-api/pkg/logger"
)

type fakeRequestRepo struct {
	created   *model.EmergencyRequest
	fulfilled []string
}

func (f *fakeRequestRepo) Create(ctx context.Context, r *model.EmergencyRequest) (*model.EmergencyRequest, error) {
	r.ID = "req_1"
	f.created = r
	return r, nil
}
func (f *fakeRequestRepo) Get(ctx context.Context, id string) (*model.EmergencyRequest, error) {
	return f.created, nil
}
func (f *fakeRequestRepo) Update(ctx context.Context, r *model.EmergencyRequest) (*model.EmergencyRequest, error) {
	return r, nil
}
func (f *fakeRequestRepo) List(ctx context.Context) ([]*model.EmergencyRequest, error) {
	return nil, nil
}
func (f *fakeRequestRepo) Fulfill(ctx context.Context, id string) error {
	f.fulfilled = append(f.fulfilled, id)
	return nil
}

type fakePatientRepo struct {
	known map[string]bool
}

func (f *fakePatientRepo) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	return p, nil
}
func (f *fakePatientRepo) Get(ctx context.Context, id string) (*model.Patient, error) {
	if f.known[id] {
		return &model.Patient{ID: id}, nil
	}
	return nil, apperrors.NotFound("not found")
}
func (f *fakePatientRepo) Update(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	return p, nil
}
func (f *fakePatientRepo) List(ctx context.Context) ([]*model.Patient, error) { return nil, nil }

type fakeBankRepo struct {
	known map[string]bool
}

func (f *fakeBankRepo) Create(ctx context.Context, b *model.Bank) (*model.Bank, error) {
	return b, nil
}
func (f *fakeBankRepo) Get(ctx context.Context, id string) (*model.Bank, error) {
	if f.known[id] {
		return &model.Bank{ID: id}, nil
	}
	return nil, apperrors.NotFound("not found")
}
func (f *fakeBankRepo) Update(ctx context.Context, b *model.Bank) (*model.Bank, error) {
	return b, nil
}
func (f *fakeBankRepo) List(ctx context.Context) ([]*model.Bank, error) { return nil, nil }
func (f *fakeBankRepo) FindByNameOrID(ctx context.Context, username string) (*model.Bank, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func testService(repo *fakeRequestRepo, patients, banks map[string]bool) *Service {
	log := logger.NewLogger(nil)
	return NewService(
		repo,
		&fakePatientRepo{known: patients},
		&fakeBankRepo{known: banks},
		event.NewService(nil, log),
		nil,
		log,
	)
}

func TestCreateRequestDefaultsStatusAndDate(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := testService(repo, map[string]bool{"pat_1": true}, map[string]bool{"bank_abc": true})

	created, err := svc.CreateRequest(context.Background(), &model.EmergencyRequest{
		PatientID: strPtr("pat_1"),
		BankID:    strPtr("bank_abc"),
	})
	require.NoError(t, err)

	require.NotNil(t, created.Status)
	assert.Equal(t, model.RequestStatusPending, *created.Status)
	require.NotNil(t, created.RequestDate)
	assert.NotEmpty(t, *created.RequestDate)
}

func TestCreateRequestRequiresReferences(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := testService(repo, nil, nil)

	_, err := svc.CreateRequest(context.Background(), &model.EmergencyRequest{})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Nil(t, repo.created)
}

func TestCreateRequestUnknownPatient(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := testService(repo, map[string]bool{}, map[string]bool{"bank_abc": true})

	_, err := svc.CreateRequest(context.Background(), &model.EmergencyRequest{
		PatientID: strPtr("ghost"),
		BankID:    strPtr("bank_abc"),
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Equal(t, "patient not found", appErr.Message)
}

func TestCreateRequestUnknownBank(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := testService(repo, map[string]bool{"pat_1": true}, map[string]bool{})

	_, err := svc.CreateRequest(context.Background(), &model.EmergencyRequest{
		PatientID: strPtr("pat_1"),
		BankID:    strPtr("ghost"),
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, "bank not found", appErr.Message)
}

func TestFulfillIsUnconditional(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := testService(repo, nil, nil)

	// No existence check; fulfilling an unknown id still reports success.
	result, err := svc.Fulfill(context.Background(), "req_missing", strPtr("staff_1"))
	require.NoError(t, err)

	assert.Equal(t, "req_missing", result.RequestID)
	assert.Equal(t, model.RequestStatusFulfilled, result.Status)
	require.NotNil(t, result.HandledBy)
	assert.Equal(t, "staff_1", *result.HandledBy)
	assert.Equal(t, []string{"req_missing"}, repo.fulfilled)
}

func TestFulfillWithoutStaff(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := testService(repo, nil, nil)

	result, err := svc.Fulfill(context.Background(), "req_1", nil)
	require.NoError(t, err)
	assert.Nil(t, result.HandledBy)
}
