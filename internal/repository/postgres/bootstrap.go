package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/pkg/logger"
)

// Bootstrap performs the initialization-time side effects of the native
// backend: idempotent schema creation, repair of columns missing from older
// installations, and one-shot demo seeding guarded by row counts. It must
// never run against the legacy backend, whose schema is managed externally.
func Bootstrap(ctx context.Context, db *sqlx.DB, seedDemoData bool, log *logger.Logger) error {
	if err := ensureSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	log.Info("database schema ensured")

	if err := ensureColumns(ctx, db, log); err != nil {
		return fmt.Errorf("failed to ensure columns: %w", err)
	}

	if seedDemoData {
		if err := seed(ctx, db, log); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS donors (
		donor_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		birth_date TEXT,
		gender TEXT,
		age INTEGER,
		address TEXT,
		ph_no TEXT,
		blood_type TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS banks (
		bank_id TEXT PRIMARY KEY,
		hospital_name TEXT NOT NULL,
		location TEXT,
		contact_no TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS donations (
		donation_id TEXT PRIMARY KEY,
		donor_id TEXT,
		bank_id TEXT,
		quantity INTEGER,
		donation_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS tests (
		test_id TEXT PRIMARY KEY,
		donor_id TEXT,
		donation_id TEXT,
		test_result TEXT,
		status TEXT,
		test_detail TEXT,
		test_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		patient_id TEXT PRIMARY KEY,
		hospital_id TEXT,
		name TEXT,
		age TEXT,
		gender TEXT,
		blood_group TEXT,
		disease TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		request_id TEXT PRIMARY KEY,
		patient_id TEXT,
		bank_id TEXT,
		hospital_id TEXT,
		blood_group_required TEXT,
		quantity_needed INTEGER,
		request_date TEXT,
		status TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS staffs (
		staff_id TEXT PRIMARY KEY,
		bank_id TEXT,
		contact TEXT,
		name TEXT,
		experience TEXT,
		qualification TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		event_type TEXT NOT NULL,
		payload JSONB NOT NULL,
		status TEXT NOT NULL,
		error_message TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		processed_at TIMESTAMPTZ
	)`,
}

func ensureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ensureColumns repairs installations created before the password column was
// introduced.
func ensureColumns(ctx context.Context, db *sqlx.DB, log *logger.Logger) error {
	for _, table := range []string{"donors", "banks"} {
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS password TEXT", table)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
		log.Debug("password column ensured", "table", table)
	}
	return nil
}

// seed inserts the demo rows the original deployment shipped with. Each table
// is seeded only when empty, so restarts never duplicate data.
func seed(ctx context.Context, db *sqlx.DB, log *logger.Logger) error {
	now := time.Now().UTC().Format(time.RFC3339)

	steps := []struct {
		table string
		run   func() error
	}{
		{"donors", func() error {
			_, err := db.ExecContext(ctx,
				`INSERT INTO donors (donor_id, name, birth_date, gender, age, address, ph_no, blood_type, password)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				"donor_demo1", "Alice Walker", "1990-04-12", "female", 35, "12 Rose St", "5550101", "A+", "pass123")
			if err != nil {
				return err
			}
			_, err = db.ExecContext(ctx,
				`INSERT INTO donors (donor_id, name, birth_date, gender, age, address, ph_no, blood_type, password)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				"donor_demo2", "Bob Kumar", "1985-09-03", "male", 40, "221B Baker St", "5550102", "O-", "secret")
			return err
		}},
		{"banks", func() error {
			_, err := db.ExecContext(ctx,
				`INSERT INTO banks (bank_id, hospital_name, location, contact_no, password)
				 VALUES ($1, $2, $3, $4, $5)`,
				"bank_abc", "City Hospital Blood Bank", "Downtown", "5551000", "bankpass")
			if err != nil {
				return err
			}
			_, err = db.ExecContext(ctx,
				`INSERT INTO banks (bank_id, hospital_name, location, contact_no, password)
				 VALUES ($1, $2, $3, $4, $5)`,
				"bank_xyz", "Northside Medical", "Uptown", "5551001", "northpass")
			return err
		}},
		{"donations", func() error {
			_, err := db.ExecContext(ctx,
				`INSERT INTO donations (donation_id, donor_id, bank_id, quantity, donation_date)
				 VALUES ($1, $2, $3, $4, $5)`,
				"don_1", "donor_demo1", "bank_abc", 1, now)
			if err != nil {
				return err
			}
			_, err = db.ExecContext(ctx,
				`INSERT INTO tests (test_id, donor_id, donation_id, test_result, status, test_detail, test_date)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				"test_1", "donor_demo1", "don_1", "negative", "completed", "All good", now)
			return err
		}},
		{"patients", func() error {
			_, err := db.ExecContext(ctx,
				`INSERT INTO patients (patient_id, hospital_id, name, age, gender, blood_group, disease)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				"pat_1", "bank_abc", "Mr. John", "56", "male", "A+", "Anemia")
			return err
		}},
		{"requests", func() error {
			_, err := db.ExecContext(ctx,
				`INSERT INTO requests (request_id, patient_id, bank_id, hospital_id, blood_group_required, quantity_needed, request_date, status)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				"req_1", "pat_1", "bank_abc", "bank_abc", "A+", 2, now, "pending")
			return err
		}},
		{"staffs", func() error {
			_, err := db.ExecContext(ctx,
				`INSERT INTO staffs (staff_id, bank_id, contact, name, experience, qualification)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				"staff_1", "bank_abc", "5552000", "Samantha Lee", "5 years", "MBBS")
			return err
		}},
	}

	for _, step := range steps {
		var count int
		if err := db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(1) FROM %s", step.table)); err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		log.Info("seeding table", "table", step.table)
		if err := step.run(); err != nil {
			return err
		}
	}

	log.Info("seeding complete")
	return nil
}
