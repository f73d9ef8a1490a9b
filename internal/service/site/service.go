package site

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
	"github.com/sitelink-app/sitelink-backend-go/internal/fixtures"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
	"github.com/sitelink-app/sitelink-backend-go/internal/repository/postgresql"
)

type SiteServiceImpl struct {
	db *database.DB
	site.SiteRepository
}

func NewSiteService(db *database.DB, siteRepository site.SiteRepository) site.SiteService {
	return &SiteServiceImpl{
		db:             db,
		SiteRepository: siteRepository,
	}
}

// owned loads a site and enforces that it belongs to the calling business.
func (s *SiteServiceImpl) owned(ctx context.Context, businessID, siteID string) (site.Site, error) {
	siteData, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return site.Site{}, err
	}
	if siteData.BusinessID != businessID {
		return site.Site{}, site.ErrNotSiteOwner
	}
	return siteData, nil
}

// Create implements site.SiteService.
func (s *SiteServiceImpl) Create(ctx context.Context, businessID string, req site.CreateRequest) (site.Response, error) {
	var created site.Site

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.SiteRepository.Create(txCtx, site.Site{
			BusinessID:       businessID,
			Name:             req.Name,
			Address:          req.Address,
			ComplianceStatus: site.CompliancePending,
		})
		if err != nil {
			return err
		}

		if err := s.SiteRepository.CreateRequirements(txCtx, fixtures.DefaultSiteRequirements(created.ID)); err != nil {
			return fmt.Errorf("failed to seed site requirements: %w", err)
		}
		return nil
	})
	if err != nil {
		return site.Response{}, err
	}

	return site.ToResponse(created), nil
}

// Get implements site.SiteService.
func (s *SiteServiceImpl) Get(ctx context.Context, businessID, siteID string) (site.Response, error) {
	siteData, err := s.owned(ctx, businessID, siteID)
	if err != nil {
		return site.Response{}, err
	}
	return site.ToResponse(siteData), nil
}

// List implements site.SiteService.
func (s *SiteServiceImpl) List(ctx context.Context, businessID string) ([]site.Response, error) {
	sites, err := s.SiteRepository.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]site.Response, 0, len(sites))
	for _, siteData := range sites {
		responses = append(responses, site.ToResponse(siteData))
	}
	return responses, nil
}

// Update implements site.SiteService.
func (s *SiteServiceImpl) Update(ctx context.Context, businessID, siteID string, req site.UpdateRequest) (site.Response, error) {
	if _, err := s.owned(ctx, businessID, siteID); err != nil {
		return site.Response{}, err
	}

	updated, err := s.SiteRepository.Update(ctx, siteID, req)
	if err != nil {
		return site.Response{}, err
	}
	return site.ToResponse(updated), nil
}

// Delete implements site.SiteService.
func (s *SiteServiceImpl) Delete(ctx context.Context, businessID, siteID string) error {
	if _, err := s.owned(ctx, businessID, siteID); err != nil {
		return err
	}
	return s.SiteRepository.Delete(ctx, siteID)
}

// ListRequirements implements site.SiteService.
func (s *SiteServiceImpl) ListRequirements(ctx context.Context, businessID, siteID string) ([]site.RequirementResponse, error) {
	if _, err := s.owned(ctx, businessID, siteID); err != nil {
		return nil, err
	}

	reqs, err := s.SiteRepository.ListRequirements(ctx, siteID)
	if err != nil {
		return nil, err
	}

	responses := make([]site.RequirementResponse, 0, len(reqs))
	for _, req := range reqs {
		responses = append(responses, site.ToRequirementResponse(req))
	}
	return responses, nil
}

// UpdateRequirement implements site.SiteService.
func (s *SiteServiceImpl) UpdateRequirement(ctx context.Context, businessID, siteID, requirementID string, req site.UpdateRequirementRequest) (site.RequirementResponse, error) {
	if _, err := s.owned(ctx, businessID, siteID); err != nil {
		return site.RequirementResponse{}, err
	}

	updated, err := s.SiteRepository.UpdateRequirement(ctx, requirementID, siteID, req)
	if err != nil {
		return site.RequirementResponse{}, err
	}

	// Requirement changes feed the site's compliance roll-up: all satisfied
	// or waived means compliant, anything outstanding means non_compliant.
	if err := s.recomputeCompliance(ctx, siteID); err != nil {
		return site.RequirementResponse{}, err
	}

	return site.ToRequirementResponse(updated), nil
}

func (s *SiteServiceImpl) recomputeCompliance(ctx context.Context, siteID string) error {
	reqs, err := s.SiteRepository.ListRequirements(ctx, siteID)
	if err != nil {
		return err
	}

	status := site.ComplianceCompliant
	for _, req := range reqs {
		if req.Status == site.RequirementOutstanding {
			status = site.ComplianceNonCompliant
			break
		}
	}

	siteData, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return err
	}

	statusStr := string(status)
	_, err = s.SiteRepository.Update(ctx, siteID, site.UpdateRequest{
		Name:             siteData.Name,
		Address:          siteData.Address,
		ComplianceStatus: &statusStr,
	})
	return err
}
