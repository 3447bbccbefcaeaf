package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/bloodbank-api/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validDonor() *model.Donor {
	return &model.Donor{
		Name:     "Alice Walker",
		Age:      intPtr(30),
		Phone:    strPtr("5550101234"),
		Password: strPtr("Str0ngPass"),
	}
}

func TestNormalizeDonor(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	e := NewEngine()

	tests := []struct {
		name    string
		mutate  func(*model.Donor)
		wantMsg string
	}{
		{"valid", func(d *model.Donor) {}, ""},
		{"missing name", func(d *model.Donor) { d.Name = "" }, "name required"},
		{"bad birth date", func(d *model.Donor) { d.BirthDate = strPtr("not-a-date") }, "invalid birth_date"},
		{"missing age", func(d *model.Donor) { d.Age = nil }, "invalid age"},
		{"negative age", func(d *model.Donor) { d.Age = intPtr(-1) }, "invalid age"},
		{"age over bound", func(d *model.Donor) { d.Age = intPtr(121) }, "invalid age"},
		{"missing phone", func(d *model.Donor) { d.Phone = nil }, "invalid phone format"},
		{"short phone", func(d *model.Donor) { d.Phone = strPtr("12345") }, "invalid phone format"},
		{"long phone", func(d *model.Donor) { d.Phone = strPtr("1234567890123456") }, "invalid phone format"},
		{"alpha phone", func(d *model.Donor) { d.Phone = strPtr("555abc1234") }, "invalid phone format"},
		{"missing password", func(d *model.Donor) { d.Password = nil }, "password does not meet complexity requirements"},
		{"short password", func(d *model.Donor) { d.Password = strPtr("Ab1") }, "password does not meet complexity requirements"},
		{"no upper", func(d *model.Donor) { d.Password = strPtr("weakpass1") }, "password does not meet complexity requirements"},
		{"no digit", func(d *model.Donor) { d.Password = strPtr("Weakpassword") }, "password does not meet complexity requirements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDonor()
			tt.mutate(d)
			err := e.NormalizeDonor(d, now)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantMsg, err.Message)
			}
		})
	}
}

func TestNormalizeDonorDerivesAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	e := NewEngine()

	d := validDonor()
	d.Age = nil
	d.BirthDate = strPtr("1990-04-12")

	require.Nil(t, e.NormalizeDonor(d, now))
	require.NotNil(t, d.Age)
	assert.Equal(t, 35, *d.Age)
}

func TestNormalizeDonorPlusPrefixedPhone(t *testing.T) {
	e := NewEngine()
	d := validDonor()
	d.Phone = strPtr("+4915512345")
	assert.Nil(t, e.NormalizeDonor(d, time.Now()))
}

func TestNormalizeBank(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name    string
		bank    model.Bank
		wantMsg string
	}{
		{
			"valid",
			model.Bank{HospitalName: "City Hospital", ContactNo: strPtr("5551000123"), Password: strPtr("Str0ngPass")},
			"",
		},
		{
			"missing name",
			model.Bank{ContactNo: strPtr("5551000123"), Password: strPtr("Str0ngPass")},
			"hospital_name required",
		},
		{
			"bad contact",
			model.Bank{HospitalName: "City Hospital", ContactNo: strPtr("abc"), Password: strPtr("Str0ngPass")},
			"invalid contact_no",
		},
		{
			"weak password",
			model.Bank{HospitalName: "City Hospital", ContactNo: strPtr("5551000123"), Password: strPtr("short")},
			"password does not meet complexity requirements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.bank
			err := e.NormalizeBank(&b)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantMsg, err.Message)
			}
		})
	}
}

func TestValidateDonate(t *testing.T) {
	e := NewEngine()

	err := e.ValidateDonate(&model.DonateRequest{DonorID: "d1", BankID: "b1", Quantity: 2})
	assert.Nil(t, err)

	err = e.ValidateDonate(&model.DonateRequest{DonorID: "d1", Quantity: 2})
	require.NotNil(t, err)
	assert.Equal(t, "donor_id, bank_id and quantity required", err.Message)

	err = e.ValidateDonate(&model.DonateRequest{DonorID: "d1", BankID: "b1"})
	require.NotNil(t, err)
	assert.Equal(t, "donor_id, bank_id and quantity required", err.Message)
}

func TestDeriveAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		want      int
		wantErr   bool
	}{
		{"birthday passed", "1990-04-12", 35, false},
		{"birthday upcoming", "1990-09-03", 34, false},
		{"birthday today", "1990-06-15", 35, false},
		{"rfc3339 accepted", "1990-04-12T00:00:00Z", 35, false},
		{"garbage", "12/04/1990", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := DeriveAge(tt.birthDate, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, age)
		})
	}
}
