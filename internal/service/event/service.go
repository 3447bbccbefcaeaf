package event

import (
	"context"
	"encoding/json"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/pkg/logger"
)

// Event types published through the outbox.
const (
	TypeDonationCreate = "DONATION_CREATE"
	TypeRequestCreate  = "REQUEST_CREATE"
	TypeRequestFulfill = "REQUEST_FULFILL"
)

// Service records domain events in the outbox table for asynchronous
// publication. Event capture is best effort: a failed write is logged and
// never fails the request that produced it.
type Service struct {
	outbox repository.OutboxRepository
	log    *logger.Logger
}

// NewService accepts a nil outbox repository, in which case every Emit is a
// no-op. That is the configuration on the legacy backend, which has no
// outbox table.
func NewService(outbox repository.OutboxRepository, log *logger.Logger) *Service {
	return &Service{outbox: outbox, log: log}
}

func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) {
	if s.outbox == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error(err, "failed to marshal event payload", "event_type", eventType)
		return
	}

	if err := s.outbox.Create(ctx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   data,
	}); err != nil {
		s.log.Error(err, "failed to create outbox event", "event_type", eventType)
	}
}
