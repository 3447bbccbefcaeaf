package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
	"github.com/jwalitptl/bloodbank-api/pkg/identifier"
)

type donationRepository struct {
	repo
}

func NewDonationRepository(db *sqlx.DB, adapter schema.Adapter) repository.DonationRepository {
	return &donationRepository{repo{db: db, schema: adapter}}
}

// CreateWithTest inserts the donation and its screening test in a single
// transaction. The test always starts pending and points at the donation id,
// regardless of which backend assigned that id.
func (r *donationRepository) CreateWithTest(ctx context.Context, donation *model.Donation, test *model.BloodTest) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr(err)
	}
	defer tx.Rollback()

	if r.schema.GeneratesID() {
		if err := insertReturningTx(ctx, tx, r.schema.Insert(schema.Donations), donation, &donation.ID); err != nil {
			return err
		}
		test.DonationID = donation.ID
		if err := insertReturningTx(ctx, tx, r.schema.Insert(schema.Tests), test, &test.ID); err != nil {
			return err
		}
	} else {
		if donation.ID == "" {
			donation.ID = identifier.New("don")
		}
		if test.ID == "" {
			test.ID = identifier.New("test")
		}
		test.DonationID = donation.ID
		if _, err := tx.NamedExecContext(ctx, r.schema.Insert(schema.Donations), donation); err != nil {
			return storageErr(err)
		}
		if _, err := tx.NamedExecContext(ctx, r.schema.Insert(schema.Tests), test); err != nil {
			return storageErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr(err)
	}
	return nil
}

func insertReturningTx(ctx context.Context, tx *sqlx.Tx, query string, arg interface{}, id *string) error {
	rows, err := sqlx.NamedQueryContext(ctx, tx, query, arg)
	if err != nil {
		return storageErr(err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(id); err != nil {
			return storageErr(err)
		}
	}
	if err := rows.Err(); err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *donationRepository) Get(ctx context.Context, id string) (*model.Donation, error) {
	var donation model.Donation
	if err := r.getRow(ctx, &donation, r.schema.SelectByID(schema.Donations), id); err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) Update(ctx context.Context, donation *model.Donation) (*model.Donation, error) {
	if _, err := r.db.NamedExecContext(ctx, r.schema.Update(schema.Donations), donation); err != nil {
		return nil, storageErr(err)
	}
	return r.Get(ctx, donation.ID)
}

func (r *donationRepository) List(ctx context.Context) ([]*model.Donation, error) {
	var donations []*model.Donation
	if err := r.db.SelectContext(ctx, &donations, r.schema.SelectAll(schema.Donations)); err != nil {
		return nil, storageErr(err)
	}
	return donations, nil
}
