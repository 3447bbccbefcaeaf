package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/bloodbank-api/internal/middleware"
	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/auth"
)

type fakeDonorRepo struct{ donor *model.Donor }

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
	if f.donor != nil && f.donor.Name == username {
		return f.donor, nil
	}
	return nil, nil
}

type fakeBankRepo struct{}

func (f *fakeBankRepo) Create(ctx context.Context, b *model.Bank) (*model.Bank, error) {
	return b, nil
}
func (f *fakeBankRepo) Get(ctx context.Context, id string) (*model.Bank, error) { return nil, nil }
func (f *fakeBankRepo) Update(ctx context.Context, b *model.Bank) (*model.Bank, error) {
	return b, nil
}
func (f *fakeBankRepo) List(ctx context.Context) ([]*model.Bank, error) { return nil, nil }
func (f *fakeBankRepo) FindByNameOrID(ctx context.Context, username string) (*model.Bank, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func loginRouter(donor *model.Donor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	svc := auth.NewService(&fakeDonorRepo{donor: donor}, &fakeBankRepo{})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginFlattensEntityNextToRole(t *testing.T) {
	donor := &model.Donor{ID: "donor_1", Name: "Alice", Password: strPtr("pass123")}
	r := loginRouter(donor)

	w := postLogin(r, `{"username":"Alice","password":"pass123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "donor", body["role"])
	assert.Equal(t, "donor_1", body["donor_id"])
	assert.Equal(t, "Alice", body["name"])
}

func TestLoginErrors(t *testing.T) {
	donor := &model.Donor{ID: "donor_1", Name: "Alice", Password: strPtr("pass123")}

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"missing credentials", `{"username":"","password":""}`, http.StatusBadRequest, "username and password required"},
		{"wrong password", `{"username":"Alice","password":"nope"}`, http.StatusUnauthorized, "incorrect password"},
		{"unknown user", `{"username":"ghost","password":"x"}`, http.StatusNotFound, "user not found"},
		{"unknown donor role", `{"role":"donor","username":"ghost","password":"x"}`, http.StatusNotFound, "donor not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(loginRouter(donor), tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}
