package staff

import (
	"context"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
)

type Service struct {
	repo repository.StaffRepository
}

func NewService(repo repository.StaffRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateStaff(ctx context.Context, staff *model.Staff) (*model.Staff, error) {
	return s.repo.Create(ctx, staff)
}

func (s *Service) GetStaff(ctx context.Context, id string) (*model.Staff, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateStaff(ctx context.Context, staff *model.Staff) (*model.Staff, error) {
	return s.repo.Update(ctx, staff)
}

func (s *Service) ListStaffs(ctx context.Context) ([]*model.Staff, error) {
	return s.repo.List(ctx)
}
