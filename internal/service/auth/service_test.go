package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type fakeDonorRepo struct {
	donor *model.Donor
}

func (f *fakeDonorRepo) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	return d, nil
}
func (f *fakeDonorRepo) Get(ctx context.Context, id string) (*model.Donor, error) {
	return f.donor, nil
}
func (f *fakeDonorRepo) Update(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	return d, nil
}
func (f *fakeDonorRepo) List(ctx context.Context) ([]*model.Donor, error) { return nil, nil }
func (f *fakeDonorRepo) FindByNameOrID(ctx context.Context, username string) (*model.Donor, error) {
	if f.donor != nil && (f.donor.Name == username || f.donor.ID == username) {
		return f.donor, nil
	}
	return nil, nil
}

type fakeBankRepo struct {
	bank *model.Bank
}

func (f *fakeBankRepo) Create(ctx context.Context, b *model.Bank) (*model.Bank, error) {
	return b, nil
}
func (f *fakeBankRepo) Get(ctx context.Context, id string) (*model.Bank, error) {
	return f.bank, nil
}
func (f *fakeBankRepo) Update(ctx context.Context, b *model.Bank) (*model.Bank, error) {
	return b, nil
}
func (f *fakeBankRepo) List(ctx context.Context) ([]*model.Bank, error) { return nil, nil }
func (f *fakeBankRepo) FindByNameOrID(ctx context.Context, username string) (*model.Bank, error) {
	if f.bank != nil && (f.bank.HospitalName == username || f.bank.ID == username) {
		return f.bank, nil
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func testService(donor *model.Donor, bank *model.Bank) *Service {
	return NewService(&fakeDonorRepo{donor: donor}, &fakeBankRepo{bank: bank})
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := testService(nil, nil)

	for _, req := range []*model.LoginRequest{
		{Username: "", Password: "x"},
		{Username: "x", Password: ""},
	} {
		_, err := svc.Login(context.Background(), req)
		require.Error(t, err)
		appErr := err.(*apperrors.AppError)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
		assert.Equal(t, "username and password required", appErr.Message)
	}
}

func TestLoginDonorByName(t *testing.T) {
	donor := &model.Donor{ID: "donor_1", Name: "Alice", Password: strPtr("pass123")}
	svc := testService(donor, nil)

	result, err := svc.Login(context.Background(), &model.LoginRequest{Username: "Alice", Password: "pass123"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleDonor, result.Role)
	assert.Equal(t, donor, result.Entity)
}

func TestLoginDonorWrongPassword(t *testing.T) {
	donor := &model.Donor{ID: "donor_1", Name: "Alice", Password: strPtr("pass123")}
	svc := testService(donor, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Username: "Alice", Password: "nope"})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode())
	assert.Equal(t, "incorrect password", appErr.Message)
}

func TestLoginDonorRoleMissReportsDonorNotFound(t *testing.T) {
	svc := testService(nil, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Role: model.RoleDonor, Username: "ghost", Password: "x",
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
	assert.Equal(t, "donor not found", appErr.Message)
}

func TestLoginFallsThroughToBank(t *testing.T) {
	bank := &model.Bank{ID: "bank_1", HospitalName: "City Hospital", Password: strPtr("bankpass")}
	svc := testService(nil, bank)

	result, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "City Hospital", Password: "bankpass",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleHospital, result.Role)
	assert.Equal(t, bank, result.Entity)
}

func TestLoginNoMatchAnywhere(t *testing.T) {
	svc := testService(nil, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Username: "ghost", Password: "x"})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
	assert.Equal(t, "user not found", appErr.Message)
}

func TestLoginDonorMatchedByID(t *testing.T) {
	donor := &model.Donor{ID: "donor_1", Name: "Alice", Password: strPtr("pass123")}
	svc := testService(donor, nil)

	result, err := svc.Login(context.Background(), &model.LoginRequest{Username: "donor_1", Password: "pass123"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleDonor, result.Role)
}
