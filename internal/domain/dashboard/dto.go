package dashboard

// JobStatusCounts breaks jobs down by status
type JobStatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// BusinessOverview is the business portal dashboard
type BusinessOverview struct {
	SiteCount         int             `json:"site_count"`
	CompliantSites    int             `json:"compliant_sites"`
	NonCompliantSites int             `json:"non_compliant_sites"`
	Jobs              JobStatusCounts `json:"jobs"`
	ContractorCount   int             `json:"contractor_count"`
	PendingApprovals  int             `json:"pending_approvals"`
}

// ContractorOverview is the contractor portal dashboard
type ContractorOverview struct {
	Jobs          JobStatusCounts `json:"jobs"`
	AssignedSites int             `json:"assigned_sites"`
}
