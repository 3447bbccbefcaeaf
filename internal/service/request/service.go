package request

import (
	"context"
	"time"

	"github.com/jwalitptl/bloodbank-api/internal/email"
	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/service/event"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
	"github.com/jwalitptl/bloodbank-api/pkg/logger"
)

type Service struct {
	repo     repository.RequestRepository
	patients repository.PatientRepository
	banks    repository.BankRepository
	events   *event.Service
	emailSvc email.Service
	log      *logger.Logger
}

func NewService(
	repo repository.RequestRepository,
	patients repository.PatientRepository,
	banks repository.BankRepository,
	events *event.Service,
	emailSvc email.Service,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		banks:    banks,
		events:   events,
		emailSvc: emailSvc,
		log:      log,
	}
}

// CreateRequest verifies the referenced patient and bank exist, fills in the
// pending status and request date, and notifies the operations mailbox when
// mail is configured.
func (s *Service) CreateRequest(ctx context.Context, request *model.EmergencyRequest) (*model.EmergencyRequest, error) {
	if request.PatientID == nil || *request.PatientID == "" || request.BankID == nil || *request.BankID == "" {
		return nil, apperrors.Validation("request", "patient_id and bank_id required")
	}

	if _, err := s.patients.Get(ctx, *request.PatientID); err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Code == apperrors.ErrNotFound {
			return nil, apperrors.Validation("patient_id", "patient not found")
		}
		return nil, err
	}
	if _, err := s.banks.Get(ctx, *request.BankID); err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Code == apperrors.ErrNotFound {
			return nil, apperrors.Validation("bank_id", "bank not found")
		}
		return nil, err
	}

	if request.Status == nil || *request.Status == "" {
		pending := model.RequestStatusPending
		request.Status = &pending
	}
	if request.RequestDate == nil || *request.RequestDate == "" {
		now := time.Now().UTC().Format(time.RFC3339)
		request.RequestDate = &now
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, event.TypeRequestCreate, created)

	if s.emailSvc != nil && s.emailSvc.Enabled() {
		// Delivery is best effort and must not hold up the response.
		go func(r *model.EmergencyRequest) {
			if err := s.emailSvc.SendRequestNotification(r); err != nil {
				s.log.Error(err, "failed to send request notification", "request_id", r.ID)
			}
		}(created)
	}

	return created, nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (*model.EmergencyRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateRequest(ctx context.Context, request *model.EmergencyRequest) (*model.EmergencyRequest, error) {
	return s.repo.Update(ctx, request)
}

func (s *Service) ListRequests(ctx context.Context) ([]*model.EmergencyRequest, error) {
	return s.repo.List(ctx)
}

// Fulfill marks a request fulfilled. The update is idempotent and does not
// verify the request exists; an unknown id still reports success, which
// clients rely on when retrying.
func (s *Service) Fulfill(ctx context.Context, id string, staffID *string) (*model.FulfillResult, error) {
	if err := s.repo.Fulfill(ctx, id); err != nil {
		return nil, err
	}

	result := &model.FulfillResult{
		RequestID: id,
		Status:    model.RequestStatusFulfilled,
		HandledBy: staffID,
	}
	s.events.Emit(ctx, event.TypeRequestFulfill, result)
	return result, nil
}
