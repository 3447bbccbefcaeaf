package bloodtest

import (
	"context"
	"time"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
)

type Service struct {
	repo repository.TestRepository
}

func NewService(repo repository.TestRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetTest(ctx context.Context, id string) (*model.BloodTest, error) {
	return s.repo.Get(ctx, id)
}

// UpdateTest records screening results. Absent detail defaults to empty and
// an absent date to now, matching how results were historically posted.
func (s *Service) UpdateTest(ctx context.Context, id string, req *model.UpdateTestRequest) (*model.BloodTest, error) {
	test, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TestResult != nil {
		test.TestResult = req.TestResult
	}
	if req.Status != nil {
		test.Status = req.Status
	}
	if req.TestDetail != nil {
		test.TestDetail = req.TestDetail
	} else if test.TestDetail == nil {
		empty := ""
		test.TestDetail = &empty
	}
	if req.TestDate != nil {
		test.TestDate = req.TestDate
	} else if test.TestDate == nil {
		now := time.Now().UTC().Format(time.RFC3339)
		test.TestDate = &now
	}

	return s.repo.Update(ctx, test)
}

func (s *Service) ListTests(ctx context.Context) ([]*model.BloodTest, error) {
	return s.repo.List(ctx)
}
