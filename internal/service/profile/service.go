package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type ProfileServiceImpl struct {
	db *database.DB
	profile.ProfileRepository
	contractor.ContractorRepository
}

func NewProfileService(db *database.DB, profileRepository profile.ProfileRepository, contractorRepository contractor.ContractorRepository) profile.ProfileService {
	return &ProfileServiceImpl{
		db:                   db,
		ProfileRepository:    profileRepository,
		ContractorRepository: contractorRepository,
	}
}

// GetMe implements profile.ProfileService.
func (s *ProfileServiceImpl) GetMe(ctx context.Context, userID string) (profile.Response, error) {
	profileData, err := s.ProfileRepository.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Response{}, err
	}
	return profile.ToResponse(profileData), nil
}

// UpdateMe implements profile.ProfileService.
func (s *ProfileServiceImpl) UpdateMe(ctx context.Context, userID string, req profile.UpdateRequest) (profile.Response, error) {
	profileData, err := s.ProfileRepository.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Response{}, err
	}

	updated, err := s.ProfileRepository.Update(ctx, profileData.ID, req)
	if err != nil {
		return profile.Response{}, err
	}

	// A contractor's first profile save seeds the directory record so the
	// account shows up in business-side searches.
	if updated.UserType == profile.TypeContractor {
		if _, err := s.ContractorRepository.GetByProfileID(ctx, updated.ID); err != nil {
			if !errors.Is(err, contractor.ErrContractorNotFound) {
				return profile.Response{}, fmt.Errorf("failed to check contractor record: %w", err)
			}
			_, err = s.ContractorRepository.Create(ctx, contractor.Contractor{
				ProfileID:   updated.ID,
				CompanyName: updated.FullName(),
				ServiceType: "general",
				Location:    "",
				Email:       updated.Email,
				Status:      contractor.StatusActive,
			})
			if err != nil {
				return profile.Response{}, fmt.Errorf("failed to create contractor record: %w", err)
			}
		}
	}

	return profile.ToResponse(updated), nil
}
