package site

import "errors"

var (
	ErrSiteNotFound        = errors.New("site not found")
	ErrRequirementNotFound = errors.New("site requirement not found")
	ErrNotSiteOwner        = errors.New("site belongs to another business")
)
