package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/bloodbank-api/internal/model"
)

// All repository interfaces in one file. Every implementation is backed by
// the same relational store; the active schema adapter decides which physical
// layout the statements target.
type (
	DonorRepository interface {
		Create(ctx context.Context, donor *model.Donor) (*model.Donor, error)
		Get(ctx context.Context, id string) (*model.Donor, error)
		Update(ctx context.Context, donor *model.Donor) (*model.Donor, error)
		List(ctx context.Context) ([]*model.Donor, error)
		// FindByNameOrID serves the login path; a miss returns (nil, nil).
		FindByNameOrID(ctx context.Context, username string) (*model.Donor, error)
	}

	BankRepository interface {
		Create(ctx context.Context, bank *model.Bank) (*model.Bank, error)
		Get(ctx context.Context, id string) (*model.Bank, error)
		Update(ctx context.Context, bank *model.Bank) (*model.Bank, error)
		List(ctx context.Context) ([]*model.Bank, error)
		FindByNameOrID(ctx context.Context, username string) (*model.Bank, error)
	}

	DonationRepository interface {
		// CreateWithTest persists a donation and its linked screening test
		// in one transaction; both rows exist or neither does.
		CreateWithTest(ctx context.Context, donation *model.Donation, test *model.BloodTest) error
		Get(ctx context.Context, id string) (*model.Donation, error)
		Update(ctx context.Context, donation *model.Donation) (*model.Donation, error)
		List(ctx context.Context) ([]*model.Donation, error)
	}

	TestRepository interface {
		Get(ctx context.Context, id string) (*model.BloodTest, error)
		Update(ctx context.Context, test *model.BloodTest) (*model.BloodTest, error)
		List(ctx context.Context) ([]*model.BloodTest, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		Get(ctx context.Context, id string) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
	}

	RequestRepository interface {
		Create(ctx context.Context, request *model.EmergencyRequest) (*model.EmergencyRequest, error)
		Get(ctx context.Context, id string) (*model.EmergencyRequest, error)
		Update(ctx context.Context, request *model.EmergencyRequest) (*model.EmergencyRequest, error)
		List(ctx context.Context) ([]*model.EmergencyRequest, error)
		Fulfill(ctx context.Context, id string) error
	}

	StaffRepository interface {
		Create(ctx context.Context, staff *model.Staff) (*model.Staff, error)
		Get(ctx context.Context, id string) (*model.Staff, error)
		Update(ctx context.Context, staff *model.Staff) (*model.Staff, error)
		List(ctx context.Context) ([]*model.Staff, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMessage *string) error
	}
)
