package auth

import (
	"context"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/repository"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
	"github.com/jwalitptl/bloodbank-api/pkg/security"
)

type Service struct {
	donors repository.DonorRepository
	banks  repository.BankRepository
}

func NewService(donors repository.DonorRepository, banks repository.BankRepository) *Service {
	return &Service{donors: donors, banks: banks}
}

// Login resolves credentials against donors and banks. The role field narrows
// the search: "donor" checks donors only, "hospital" checks banks only, and
// anything else tries donors first and falls through to banks.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.Validation("login", "username and password required")
	}

	if req.Role == "" || req.Role == model.RoleDonor {
		donor, err := s.donors.FindByNameOrID(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if donor != nil {
			stored := ""
			if donor.Password != nil {
				stored = *donor.Password
			}
			if !security.CheckPassword(stored, req.Password) {
				return nil, apperrors.Unauthorized("incorrect password")
			}
			return &model.LoginResult{Role: model.RoleDonor, Entity: donor}, nil
		}
		if req.Role == model.RoleDonor {
			return nil, apperrors.NotFound("donor not found")
		}
	}

	bank, err := s.banks.FindByNameOrID(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if bank != nil {
		stored := ""
		if bank.Password != nil {
			stored = *bank.Password
		}
		if !security.CheckPassword(stored, req.Password) {
			return nil, apperrors.Unauthorized("incorrect password")
		}
		return &model.LoginResult{Role: model.RoleHospital, Entity: bank}, nil
	}

	return nil, apperrors.NotFound("user not found")
}
