package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
)

type testRepository struct {
	repo
}

func NewTestRepository(db *sqlx.DB, adapter schema.Adapter) repository.TestRepository {
	return &testRepository{repo{db: db, schema: adapter}}
}

func (r *testRepository) Get(ctx context.Context, id string) (*model.BloodTest, error) {
	var test model.BloodTest
	if err := r.getRow(ctx, &test, r.schema.SelectByID(schema.Tests), id); err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) Update(ctx context.Context, test *model.BloodTest) (*model.BloodTest, error) {
	if _, err := r.db.NamedExecContext(ctx, r.schema.Update(schema.Tests), test); err != nil {
		return nil, storageErr(err)
	}
	return r.Get(ctx, test.ID)
}

func (r *testRepository) List(ctx context.Context) ([]*model.BloodTest, error) {
	var tests []*model.BloodTest
	if err := r.db.SelectContext(ctx, &tests, r.schema.SelectAll(schema.Tests)); err != nil {
		return nil, storageErr(err)
	}
	return tests, nil
}
