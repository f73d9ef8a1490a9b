package contractor

import (
	"context"
	"fmt"
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
)

type ContractorServiceImpl struct {
	contractor.ContractorRepository
}

func NewContractorService(contractorRepository contractor.ContractorRepository) contractor.ContractorService {
	return &ContractorServiceImpl{
		ContractorRepository: contractorRepository,
	}
}

// List implements contractor.ContractorService.
func (s *ContractorServiceImpl) List(ctx context.Context, q contractor.ListQuery) ([]contractor.Response, error) {
	contractors, err := s.ContractorRepository.List(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]contractor.Response, 0, len(contractors))
	for _, c := range contractors {
		responses = append(responses, contractor.ToResponse(c))
	}
	return responses, nil
}

// Get implements contractor.ContractorService.
func (s *ContractorServiceImpl) Get(ctx context.Context, id string) (contractor.Response, error) {
	c, err := s.ContractorRepository.GetByID(ctx, id)
	if err != nil {
		return contractor.Response{}, err
	}
	return contractor.ToResponse(c), nil
}

// GetMine implements contractor.ContractorService.
func (s *ContractorServiceImpl) GetMine(ctx context.Context, profileID string) (contractor.Response, error) {
	c, err := s.ContractorRepository.GetByProfileID(ctx, profileID)
	if err != nil {
		return contractor.Response{}, err
	}
	return contractor.ToResponse(c), nil
}

// UpdateMine implements contractor.ContractorService.
func (s *ContractorServiceImpl) UpdateMine(ctx context.Context, profileID string, req contractor.UpdateRequest) (contractor.Response, error) {
	c, err := s.ContractorRepository.GetByProfileID(ctx, profileID)
	if err != nil {
		return contractor.Response{}, err
	}

	updated, err := s.ContractorRepository.Update(ctx, c.ID, req)
	if err != nil {
		return contractor.Response{}, err
	}
	return contractor.ToResponse(updated), nil
}

// AddServiceArea implements contractor.ContractorService.
func (s *ContractorServiceImpl) AddServiceArea(ctx context.Context, profileID string, req contractor.CreateServiceAreaRequest) (contractor.ServiceArea, error) {
	c, err := s.ContractorRepository.GetByProfileID(ctx, profileID)
	if err != nil {
		return contractor.ServiceArea{}, err
	}

	return s.ContractorRepository.CreateServiceArea(ctx, contractor.ServiceArea{
		ContractorID: c.ID,
		City:         req.City,
		PostalCode:   req.PostalCode,
	})
}

// ListServiceAreas implements contractor.ContractorService.
func (s *ContractorServiceImpl) ListServiceAreas(ctx context.Context, contractorID string) ([]contractor.ServiceArea, error) {
	return s.ContractorRepository.ListServiceAreas(ctx, contractorID)
}

// RemoveServiceArea implements contractor.ContractorService.
func (s *ContractorServiceImpl) RemoveServiceArea(ctx context.Context, profileID, areaID string) error {
	c, err := s.ContractorRepository.GetByProfileID(ctx, profileID)
	if err != nil {
		return err
	}
	return s.ContractorRepository.DeleteServiceArea(ctx, areaID, c.ID)
}

// AddLicense implements contractor.ContractorService.
func (s *ContractorServiceImpl) AddLicense(ctx context.Context, profileID string, req contractor.CreateLicenseRequest) (contractor.License, error) {
	c, err := s.ContractorRepository.GetByProfileID(ctx, profileID)
	if err != nil {
		return contractor.License{}, err
	}

	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		t, err := time.Parse("2006-01-02", *req.ExpiresAt)
		if err != nil {
			return contractor.License{}, fmt.Errorf("failed to parse expires_at: %w", err)
		}
		expiresAt = &t
	}

	return s.ContractorRepository.CreateLicense(ctx, contractor.License{
		ContractorID:  c.ID,
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		ExpiresAt:     expiresAt,
		DocumentURL:   req.DocumentURL,
	})
}

// ListLicenses implements contractor.ContractorService.
func (s *ContractorServiceImpl) ListLicenses(ctx context.Context, contractorID string) ([]contractor.License, error) {
	return s.ContractorRepository.ListLicenses(ctx, contractorID)
}

// RemoveLicense implements contractor.ContractorService.
func (s *ContractorServiceImpl) RemoveLicense(ctx context.Context, profileID, licenseID string) error {
	c, err := s.ContractorRepository.GetByProfileID(ctx, profileID)
	if err != nil {
		return err
	}
	return s.ContractorRepository.DeleteLicense(ctx, licenseID, c.ID)
}
