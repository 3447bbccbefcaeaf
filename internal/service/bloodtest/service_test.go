package bloodtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type fakeTestRepo struct {
	tests map[string]*model.BloodTest
}

func (f *fakeTestRepo) Get(ctx context.Context, id string) (*model.BloodTest, error) {
	if t, ok := f.tests[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, apperrors.NotFound("not found")
}

func (f *fakeTestRepo) Update(ctx context.Context, t *model.BloodTest) (*model.BloodTest, error) {
	f.tests[t.ID] = t
	return t, nil
}

func (f *fakeTestRepo) List(ctx context.Context) ([]*model.BloodTest, error) { return nil, nil }

func strPtr(s string) *string { return &s }

func pendingTest() *model.BloodTest {
	return &model.BloodTest{
		ID:         "test_1",
		DonorID:    "donor_demo1",
		DonationID: "don_1",
		TestResult: strPtr(model.TestStatusPending),
		Status:     strPtr(model.TestStatusPending),
	}
}

func TestUpdateTestRecordsResults(t *testing.T) {
	repo := &fakeTestRepo{tests: map[string]*model.BloodTest{"test_1": pendingTest()}}
	svc := NewService(repo)

	updated, err := svc.UpdateTest(context.Background(), "test_1", &model.UpdateTestRequest{
		TestResult: strPtr("negative"),
		Status:     strPtr(model.TestStatusCompleted),
		TestDetail: strPtr("All markers clear"),
		TestDate:   strPtr("2025-06-15T10:00:00Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, "negative", *updated.TestResult)
	assert.Equal(t, model.TestStatusCompleted, *updated.Status)
	assert.Equal(t, "All markers clear", *updated.TestDetail)
	assert.Equal(t, "2025-06-15T10:00:00Z", *updated.TestDate)
}

func TestUpdateTestDefaultsDetailAndDate(t *testing.T) {
	repo := &fakeTestRepo{tests: map[string]*model.BloodTest{"test_1": pendingTest()}}
	svc := NewService(repo)

	updated, err := svc.UpdateTest(context.Background(), "test_1", &model.UpdateTestRequest{
		TestResult: strPtr("negative"),
		Status:     strPtr(model.TestStatusCompleted),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TestDetail)
	assert.Equal(t, "", *updated.TestDetail)
	require.NotNil(t, updated.TestDate)
	assert.NotEmpty(t, *updated.TestDate)
}

func TestUpdateTestUnknownID(t *testing.T) {
	repo := &fakeTestRepo{tests: map[string]*model.BloodTest{}}
	svc := NewService(repo)

	_, err := svc.UpdateTest(context.Background(), "ghost", &model.UpdateTestRequest{})
	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())
}
