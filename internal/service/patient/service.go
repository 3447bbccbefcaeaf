package patient

import (
	"context"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	return s.repo.Create(ctx, patient)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	return s.repo.Update(ctx, patient)
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}
