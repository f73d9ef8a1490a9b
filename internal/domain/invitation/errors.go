package invitation

import "errors"

var (
	ErrInvitationNotFound    = errors.New("invitation not found")
	ErrInvitationExpired     = errors.New("invitation has expired")
	ErrInvitationAlreadyUsed = errors.New("invitation has already been used")
	ErrEmailMismatch         = errors.New("email does not match the invitation")
	ErrEmailAlreadyInvited   = errors.New("email already has a pending invitation")
)
