package dashboard

import (
	"context"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	contractor.ContractorRepository
}

func NewDashboardService(dashboardRepository dashboard.DashboardRepository, contractorRepository contractor.ContractorRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository:  dashboardRepository,
		ContractorRepository: contractorRepository,
	}
}

// BusinessOverview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) BusinessOverview(ctx context.Context, businessProfileID string) (*dashboard.BusinessOverview, error) {
	return s.DashboardRepository.GetBusinessOverview(ctx, businessProfileID)
}

// ContractorOverview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ContractorOverview(ctx context.Context, contractorProfileID string) (*dashboard.ContractorOverview, error) {
	contractorData, err := s.ContractorRepository.GetByProfileID(ctx, contractorProfileID)
	if err != nil {
		return nil, err
	}
	return s.DashboardRepository.GetContractorOverview(ctx, contractorData.ID)
}
