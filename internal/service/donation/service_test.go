package donation

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/event"
	"github.com/jwalitptl/bloodbank-api/internal/validation"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
	"github.com/jwalitptl/bloodbank-api/pkg/logger"
)

// fakeStore simulates the transactional donation+test create the way the
// storage layer does it: ids assigned inside CreateWithTest, rows readable
// afterwards.
type fakeStore struct {
	donations map[string]*model.Donation
	tests     map[string]*model.BloodTest
	seq       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		donations: map[string]*model.Donation{},
		tests:     map[string]*model.BloodTest{},
	}
}

func (f *fakeStore) CreateWithTest(ctx context.Context, d *model.Donation, t *model.BloodTest) error {
	f.seq++
	d.ID = fmt.Sprintf("don_%d", f.seq)
	t.ID = fmt.Sprintf("test_%d", f.seq)
	t.DonationID = d.ID
	f.donations[d.ID] = d
	f.tests[t.ID] = t
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*model.Donation, error) {
	if d, ok := f.donations[id]; ok {
		return d, nil
	}
	return nil, apperrors.NotFound("not found")
}

func (f *fakeStore) Update(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	f.donations[d.ID] = d
	return d, nil
}

func (f *fakeStore) List(ctx context.Context) ([]*model.Donation, error) {
	out := make([]*model.Donation, 0, len(f.donations))
	for _, d := range f.donations {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeStore) GetTest(ctx context.Context, id string) (*model.BloodTest, error) {
	if t, ok := f.tests[id]; ok {
		return t, nil
	}
	return nil, apperrors.NotFound("not found")
}

// testRepoView adapts fakeStore to the test repository interface.
type testRepoView struct{ store *fakeStore }

func (v *testRepoView) Get(ctx context.Context, id string) (*model.BloodTest, error) {
	return v.store.GetTest(ctx, id)
}
func (v *testRepoView) Update(ctx context.Context, t *model.BloodTest) (*model.BloodTest, error) {
	v.store.tests[t.ID] = t
	return t, nil
}
func (v *testRepoView) List(ctx context.Context) ([]*model.BloodTest, error) { return nil, nil }

func testService() (*Service, *fakeStore) {
	store := newFakeStore()
	events := event.NewService(nil, logger.NewLogger(nil))
	svc := NewService(store, &testRepoView{store: store}, validation.NewEngine(), events)
	return svc, store
}

func TestDonateCreatesDonationAndPendingTest(t *testing.T) {
	svc, store := testService()

	result, err := svc.Donate(context.Background(), &model.DonateRequest{
		DonorID: "donor_demo1", BankID: "bank_abc", Quantity: 2,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Donation)
	require.NotNil(t, result.Test)
	assert.Equal(t, "donor_demo1", result.Donation.DonorID)
	assert.Equal(t, "bank_abc", result.Donation.BankID)
	require.NotNil(t, result.Donation.Quantity)
	assert.Equal(t, 2, *result.Donation.Quantity)
	require.NotNil(t, result.Donation.Notes)
	assert.Equal(t, "Frontend donation", *result.Donation.Notes)

	assert.Equal(t, result.Donation.ID, result.Test.DonationID)
	assert.Equal(t, "donor_demo1", result.Test.DonorID)
	require.NotNil(t, result.Test.Status)
	assert.Equal(t, model.TestStatusPending, *result.Test.Status)
	require.NotNil(t, result.Test.TestResult)
	assert.Equal(t, model.TestStatusPending, *result.Test.TestResult)

	assert.Len(t, store.donations, 1)
	assert.Len(t, store.tests, 1)
}

func TestDonateRejectsIncompletePayload(t *testing.T) {
	svc, store := testService()

	for _, req := range []*model.DonateRequest{
		{BankID: "bank_abc", Quantity: 1},
		{DonorID: "donor_demo1", Quantity: 1},
		{DonorID: "donor_demo1", BankID: "bank_abc"},
	} {
		_, err := svc.Donate(context.Background(), req)
		require.Error(t, err)
		appErr := err.(*apperrors.AppError)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
		assert.Equal(t, "donor_id, bank_id and quantity required", appErr.Message)
	}

	// Nothing written when validation fails.
	assert.Empty(t, store.donations)
	assert.Empty(t, store.tests)
}
