package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
	"github.com/jwalitptl/bloodbank-api/pkg/identifier"
)

type staffRepository struct {
	repo
}

func NewStaffRepository(db *sqlx.DB, adapter schema.Adapter) repository.StaffRepository {
	return &staffRepository{repo{db: db, schema: adapter}}
}

func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) (*model.Staff, error) {
	if !r.schema.GeneratesID() && staff.ID == "" {
		staff.ID = identifier.New("staff")
	}
	if err := r.insertNamed(ctx, r.schema.Insert(schema.Staffs), staff, &staff.ID); err != nil {
		return nil, err
	}
	return r.Get(ctx, staff.ID)
}

func (r *staffRepository) Get(ctx context.Context, id string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.getRow(ctx, &staff, r.schema.SelectByID(schema.Staffs), id); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.Staff) (*model.Staff, error) {
	if _, err := r.db.NamedExecContext(ctx, r.schema.Update(schema.Staffs), staff); err != nil {
		return nil, storageErr(err)
	}
	return r.Get(ctx, staff.ID)
}

func (r *staffRepository) List(ctx context.Context) ([]*model.Staff, error) {
	var staffs []*model.Staff
	if err := r.db.SelectContext(ctx, &staffs, r.schema.SelectAll(schema.Staffs)); err != nil {
		return nil, storageErr(err)
	}
	return staffs, nil
}
