package bank

import (
	"context"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/validation"
)

type Service struct {
	repo      repository.BankRepository
	validator *validation.Engine
}

func NewService(repo repository.BankRepository, validator *validation.Engine) *Service {
	return &Service{repo: repo, validator: validator}
}

func (s *Service) CreateBank(ctx context.Context, bank *model.Bank) (*model.Bank, error) {
	if rej := s.validator.NormalizeBank(bank); rej != nil {
		return nil, rej
	}
	return s.repo.Create(ctx, bank)
}

func (s *Service) GetBank(ctx context.Context, id string) (*model.Bank, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateBank(ctx context.Context, bank *model.Bank) (*model.Bank, error) {
	return s.repo.Update(ctx, bank)
}

func (s *Service) ListBanks(ctx context.Context) ([]*model.Bank, error) {
	return s.repo.List(ctx)
}
