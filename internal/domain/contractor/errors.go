package contractor

import "errors"

var (
	ErrContractorNotFound  = errors.New("contractor not found")
	ErrServiceAreaNotFound = errors.New("service area not found")
	ErrLicenseNotFound     = errors.New("license not found")
	ErrNotContractorOwner  = errors.New("contractor record belongs to another profile")
)
