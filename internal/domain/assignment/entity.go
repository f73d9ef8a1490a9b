package assignment

import "time"

// AccessLevel a contractor has on a site
type AccessLevel string

const (
	AccessStandard   AccessLevel = "standard"
	AccessRestricted AccessLevel = "restricted"
	AccessFull       AccessLevel = "full"
)

// ValidAccessLevel reports whether s is a known access level
func ValidAccessLevel(s string) bool {
	switch AccessLevel(s) {
	case AccessStandard, AccessRestricted, AccessFull:
		return true
	}
	return false
}

// Assignment links a contractor to a site. The table carries no uniqueness
// constraint on (site_id, contractor_id); duplicates are detected and
// rejected at write time.
type Assignment struct {
	ID           string
	SiteID       string
	ContractorID string
	AccessLevel  AccessLevel
	CreatedAt    time.Time
}

// Source of a site-contractor entry in the merged view
type Source string

const (
	SourceAssignment Source = "assignment"
	SourceJob        Source = "job"
)

// SiteContractorEntry is one row of the merged site-contractor view. Entries
// derived only from job rows carry no assignment ID.
type SiteContractorEntry struct {
	ContractorID   string
	ContractorName string
	AssignmentID   *string
	AccessLevel    *AccessLevel
	Source         Source
}

// SiteContractorMap maps siteID -> contractorName -> entry
type SiteContractorMap map[string]map[string]SiteContractorEntry
