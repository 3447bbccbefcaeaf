package donation

import (
	"context"
	"time"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/service/event"
	"github.com/jwalitptl/bloodbank-api/internal/validation"
)

// donateNotes marks donations submitted through the public form.
const donateNotes = "Frontend donation"

type Service struct {
	repo      repository.DonationRepository
	tests     repository.TestRepository
	validator *validation.Engine
	events    *event.Service
}

func NewService(repo repository.DonationRepository, tests repository.TestRepository, validator *validation.Engine, events *event.Service) *Service {
	return &Service{repo: repo, tests: tests, validator: validator, events: events}
}

// Donate records a donation and opens its screening test as one atomic unit.
// The test starts pending and carries the same donor.
func (s *Service) Donate(ctx context.Context, req *model.DonateRequest) (*model.DonateResult, error) {
	if rej := s.validator.ValidateDonate(req); rej != nil {
		return nil, rej
	}

	now := time.Now().UTC().Format(time.RFC3339)
	quantity := req.Quantity
	pending := model.TestStatusPending
	notes := donateNotes
	detail := ""

	donation := &model.Donation{
		DonorID:      req.DonorID,
		BankID:       req.BankID,
		Quantity:     &quantity,
		DonationDate: &now,
		Notes:        &notes,
	}
	test := &model.BloodTest{
		DonorID:    req.DonorID,
		TestResult: &pending,
		Status:     &pending,
		TestDetail: &detail,
		TestDate:   &now,
	}

	if err := s.repo.CreateWithTest(ctx, donation, test); err != nil {
		return nil, err
	}

	// Round-trip both rows so storage-assigned values come back to the caller.
	created, err := s.repo.Get(ctx, donation.ID)
	if err != nil {
		return nil, err
	}
	createdTest, err := s.tests.Get(ctx, test.ID)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, event.TypeDonationCreate, created)
	return &model.DonateResult{Donation: created, Test: createdTest}, nil
}

func (s *Service) GetDonation(ctx context.Context, id string) (*model.Donation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateDonation(ctx context.Context, donation *model.Donation) (*model.Donation, error) {
	return s.repo.Update(ctx, donation)
}

func (s *Service) ListDonations(ctx context.Context) ([]*model.Donation, error) {
	return s.repo.List(ctx)
}
