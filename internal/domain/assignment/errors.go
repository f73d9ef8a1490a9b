package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrContractorGone     = errors.New("contractor no longer exists")
)
