package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
	"github.com/jwalitptl/bloodbank-api/pkg/identifier"
)

type bankRepository struct {
	repo
}

func NewBankRepository(db *sqlx.DB, adapter schema.Adapter) repository.BankRepository {
	return &bankRepository{repo{db: db, schema: adapter}}
}

func (r *bankRepository) Create(ctx context.Context, bank *model.Bank) (*model.Bank, error) {
	if !r.schema.GeneratesID() && bank.ID == "" {
		bank.ID = identifier.New("bank")
	}
	if err := r.insertNamed(ctx, r.schema.Insert(schema.Banks), bank, &bank.ID); err != nil {
		return nil, err
	}
	return r.Get(ctx, bank.ID)
}

func (r *bankRepository) Get(ctx context.Context, id string) (*model.Bank, error) {
	var bank model.Bank
	if err := r.getRow(ctx, &bank, r.schema.SelectByID(schema.Banks), id); err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *bankRepository) Update(ctx context.Context, bank *model.Bank) (*model.Bank, error) {
	if _, err := r.db.NamedExecContext(ctx, r.schema.Update(schema.Banks), bank); err != nil {
		return nil, storageErr(err)
	}
	return r.Get(ctx, bank.ID)
}

func (r *bankRepository) List(ctx context.Context) ([]*model.Bank, error) {
	var banks []*model.Bank
	if err := r.db.SelectContext(ctx, &banks, r.schema.SelectAll(schema.Banks)); err != nil {
		return nil, storageErr(err)
	}
	return banks, nil
}

func (r *bankRepository) FindByNameOrID(ctx context.Context, username string) (*model.Bank, error) {
	var bank model.Bank
	found, err := r.findRow(ctx, &bank, r.schema.LoginLookup(schema.Banks), username, username)
	if err != nil || !found {
		return nil, err
	}
	return &bank, nil
}
