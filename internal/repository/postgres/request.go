package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
	"github.com/jwalitptl/bloodbank-api/pkg/identifier"
)

type requestRepository struct {
	repo
}

func NewRequestRepository(db *sqlx.DB, adapter schema.Adapter) repository.RequestRepository {
	return &requestRepository{repo{db: db, schema: adapter}}
}

func (r *requestRepository) Create(ctx context.Context, request *model.EmergencyRequest) (*model.EmergencyRequest, error) {
	if !r.schema.GeneratesID() && request.ID == "" {
		request.ID = identifier.New("req")
	}
	if err := r.insertNamed(ctx, r.schema.Insert(schema.Requests), request, &request.ID); err != nil {
		return nil, err
	}
	return r.Get(ctx, request.ID)
}

func (r *requestRepository) Get(ctx context.Context, id string) (*model.EmergencyRequest, error) {
	var request model.EmergencyRequest
	if err := r.getRow(ctx, &request, r.schema.SelectByID(schema.Requests), id); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) Update(ctx context.Context, request *model.EmergencyRequest) (*model.EmergencyRequest, error) {
	if _, err := r.db.NamedExecContext(ctx, r.schema.Update(schema.Requests), request); err != nil {
		return nil, storageErr(err)
	}
	return r.Get(ctx, request.ID)
}

func (r *requestRepository) List(ctx context.Context) ([]*model.EmergencyRequest, error) {
	var requests []*model.EmergencyRequest
	if err := r.db.SelectContext(ctx, &requests, r.schema.SelectAll(schema.Requests)); err != nil {
		return nil, storageErr(err)
	}
	return requests, nil
}

// Fulfill sets the terminal status. Re-running it on an already fulfilled
// request is a no-op, which keeps the operation idempotent.
func (r *requestRepository) Fulfill(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.schema.Fulfill(), model.RequestStatusFulfilled, id); err != nil {
		return storageErr(err)
	}
	return nil
}
