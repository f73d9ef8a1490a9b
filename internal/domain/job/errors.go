package job

import "errors"

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidTransition  = errors.New("job status transition not allowed")
	ErrJobSiteMismatch    = errors.New("job does not belong to this site")
	ErrContractorNotOnJob = errors.New("job is not assigned to this contractor")
)
