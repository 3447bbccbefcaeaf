package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
	"github.com/jwalitptl/bloodbank-api/pkg/identifier"
)

type donorRepository struct {
	repo
}

func NewDonorRepository(db *sqlx.DB, adapter schema.Adapter) repository.DonorRepository {
	return &donorRepository{repo{db: db, schema: adapter}}
}

func (r *donorRepository) Create(ctx context.Context, donor *model.Donor) (*model.Donor, error) {
	if !r.schema.GeneratesID() && donor.ID == "" {
		donor.ID = identifier.New("donor")
	}
	if err := r.insertNamed(ctx, r.schema.Insert(schema.Donors), donor, &donor.ID); err != nil {
		return nil, err
	}
	// Re-read so the caller sees the row exactly as stored.
	return r.Get(ctx, donor.ID)
}

func (r *donorRepository) Get(ctx context.Context, id string) (*model.Donor, error) {
	var donor model.Donor
	if err := r.getRow(ctx, &donor, r.schema.SelectByID(schema.Donors), id); err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) Update(ctx context.Context, donor *model.Donor) (*model.Donor, error) {
	if _, err := r.db.NamedExecContext(ctx, r.schema.Update(schema.Donors), donor); err != nil {
		return nil, storageErr(err)
	}
	return r.Get(ctx, donor.ID)
}

func (r *donorRepository) List(ctx context.Context) ([]*model.Donor, error) {
	var donors []*model.Donor
	if err := r.db.SelectContext(ctx, &donors, r.schema.SelectAll(schema.Donors)); err != nil {
		return nil, storageErr(err)
	}
	return donors, nil
}

func (r *donorRepository) FindByNameOrID(ctx context.Context, username string) (*model.Donor, error) {
	var donor model.Donor
	found, err := r.findRow(ctx, &donor, r.schema.LoginLookup(schema.Donors), username, username)
	if err != nil || !found {
		return nil, err
	}
	return &donor, nil
}
