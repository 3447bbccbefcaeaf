// Package validation gates entity creation on structural and business rules
// before anything touches storage. The checks are backend-independent and run
// to completion (or first failure) with no side effects, so a rejected
// payload never leaves a partial write behind.
package validation

import (
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

// Engine validates and normalizes incoming entity payloads. It wraps a
// go-playground validator with the two domain rules registered as custom
// validations.
type Engine struct {
	validate *validator.Validate
}

func NewEngine() *Engine {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs; both are static here.
	_ = v.RegisterValidation("phone", validPhone)
	_ = v.RegisterValidation("complexity", validComplexity)
	return &Engine{validate: v}
}

// validPhone accepts an optional leading plus followed by 7 to 15 digits and
// nothing else.
func validPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) == 0 {
		return false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	if len(s) < 7 || len(s) > 15 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validComplexity requires at least 8 characters with one lowercase letter,
// one uppercase letter and one digit.
func validComplexity(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// NormalizeDonor checks a donor payload and fills in the derived age. Checks
// run in the order the original API reported them: name, birth date, age,
// phone, password.
func (e *Engine) NormalizeDonor(donor *model.Donor, now time.Time) *apperrors.AppError {
	if e.validate.Var(donor.Name, "required") != nil {
		return apperrors.Validation("name", "name required")
	}

	if donor.BirthDate != nil && *donor.BirthDate != "" {
		age, err := DeriveAge(*donor.BirthDate, now)
		if err != nil {
			return apperrors.Validation("birth_date", "invalid birth_date")
		}
		donor.Age = &age
	}
	if donor.Age == nil || *donor.Age < 0 || *donor.Age > 120 {
		return apperrors.Validation("age", "invalid age")
	}

	if donor.Phone == nil || e.validate.Var(*donor.Phone, "required,phone") != nil {
		return apperrors.Validation("ph_no", "invalid phone format")
	}
	if donor.Password == nil || e.validate.Var(*donor.Password, "required,complexity") != nil {
		return apperrors.Validation("password", "password does not meet complexity requirements")
	}
	return nil
}

// NormalizeBank checks a bank payload.
func (e *Engine) NormalizeBank(bank *model.Bank) *apperrors.AppError {
	if e.validate.Var(bank.HospitalName, "required") != nil {
		return apperrors.Validation("hospital_name", "hospital_name required")
	}
	if bank.ContactNo == nil || e.validate.Var(*bank.ContactNo, "required,phone") != nil {
		return apperrors.Validation("contact_no", "invalid contact_no")
	}
	if bank.Password == nil || e.validate.Var(*bank.Password, "required,complexity") != nil {
		return apperrors.Validation("password", "password does not meet complexity requirements")
	}
	return nil
}

// ValidateDonate checks the donate payload.
func (e *Engine) ValidateDonate(req *model.DonateRequest) *apperrors.AppError {
	if req.DonorID == "" || req.BankID == "" || req.Quantity == 0 {
		return apperrors.Validation("donate", "donor_id, bank_id and quantity required")
	}
	if req.Quantity < 0 {
		return apperrors.Validation("quantity", "invalid quantity")
	}
	return nil
}

// birthDateLayouts lists the accepted birth date formats, most common first.
var birthDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// DeriveAge computes whole years between the birth date and now, decremented
// by one when the birthday has not yet occurred this year.
func DeriveAge(birthDate string, now time.Time) (int, error) {
	var born time.Time
	var err error
	for _, layout := range birthDateLayouts {
		born, err = time.Parse(layout, birthDate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, err
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, nil
}
