package profile

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrNotAnApprover       = errors.New("only an approved business profile can review accounts")
	ErrNotReviewable       = errors.New("business profiles do not require approval")
	ErrProfileNotApproved  = errors.New("profile is pending approval")
	ErrCannotEditApproval  = errors.New("approval fields can only be changed by an approver")
	ErrSelfApproval        = errors.New("cannot review your own profile")
	ErrInvalidUserType     = errors.New("invalid user type")
	ErrProfileAlreadyExist = errors.New("profile already exists for this user")
)
