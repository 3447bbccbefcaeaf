package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	"github.com/jwalitptl/bloodbank-api/internal/schema"
	"github.com/jwalitptl/bloodbank-api/pkg/identifier"
)

type patientRepository struct {
	repo
}

func NewPatientRepository(db *sqlx.DB, adapter schema.Adapter) repository.PatientRepository {
	return &patientRepository{repo{db: db, schema: adapter}}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	if !r.schema.GeneratesID() && patient.ID == "" {
		patient.ID = identifier.New("pat")
	}
	if err := r.insertNamed(ctx, r.schema.Insert(schema.Patients), patient, &patient.ID); err != nil {
		return nil, err
	}
	return r.Get(ctx, patient.ID)
}

func (r *patientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	var patient model.Patient
	if err := r.getRow(ctx, &patient, r.schema.SelectByID(schema.Patients), id); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	if _, err := r.db.NamedExecContext(ctx, r.schema.Update(schema.Patients), patient); err != nil {
		return nil, storageErr(err)
	}
	return r.Get(ctx, patient.ID)
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, r.schema.SelectAll(schema.Patients)); err != nil {
		return nil, storageErr(err)
	}
	return patients, nil
}
