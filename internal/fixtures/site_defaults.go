package fixtures

import (
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
)

func strPtr(s string) *string { return &s }

// DefaultSiteRequirements returns the compliance items seeded onto every new
// site. All start outstanding; the site stays pending_review until reviewed.
func DefaultSiteRequirements(siteID string) []site.Requirement {
	return []site.Requirement{
		{
			SiteID:      siteID,
			Name:        "Public liability insurance",
			Description: strPtr("Current certificate of public liability insurance on file"),
			Status:      site.RequirementOutstanding,
		},
		{
			SiteID:      siteID,
			Name:        "Site safety induction",
			Description: strPtr("Safety induction material prepared for visiting contractors"),
			Status:      site.RequirementOutstanding,
		},
		{
			SiteID:      siteID,
			Name:        "Emergency contact list",
			Description: strPtr("Up-to-date emergency contacts posted on site"),
			Status:      site.RequirementOutstanding,
		},
		{
			SiteID:      siteID,
			Name:        "Hazard register",
			Description: strPtr("Known site hazards documented and shared with contractors"),
			Status:      site.RequirementOutstanding,
		},
	}
}
