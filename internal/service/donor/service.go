package donor

import (
	"context"
	"time"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/validation"
)

type Service struct {
	repo      repository.DonorRepository
	validator *validation.Engine
}

func NewService(repo repository.DonorRepository, validator *validation.Engine) *Service {
	return &Service{repo: repo, validator: validator}
}

// CreateDonor validates and normalizes the payload (deriving age from the
// birth date when one is supplied) before anything is written.
func (s *Service) CreateDonor(ctx context.Context, donor *model.Donor) (*model.Donor, error) {
	if rej := s.validator.NormalizeDonor(donor, time.Now()); rej != nil {
		return nil, rej
	}
	return s.repo.Create(ctx, donor)
}

func (s *Service) GetDonor(ctx context.Context, id string) (*model.Donor, error) {
	return s.repo.Get(ctx, id)
}

// UpdateDonor replaces the donor's writable fields wholesale; the id and
// password are untouched.
func (s *Service) UpdateDonor(ctx context.Context, donor *model.Donor) (*model.Donor, error) {
	return s.repo.Update(ctx, donor)
}

func (s *Service) ListDonors(ctx context.Context) ([]*model.Donor, error) {
	return s.repo.List(ctx)
}
