package services

import "errors"

// Domain errors surfaced to handlers, which map them to HTTP statuses.
var (
	ErrInvalidOutcome     = errors.New("outcome must be one of home-win, draw, away-win")
	ErrOutcomeRequired    = errors.New("a declared outcome is required to score a match")
	ErrAlreadyFinalized   = errors.New("match result has already been declared")
	ErrMatchNotFinished   = errors.New("match has not been finalized yet")
	ErrPredictionsLocked  = errors.New("predictions are locked for this match")
	ErrNotGroupMember     = errors.New("user is not a member of this group")
	ErrAlreadyMember      = errors.New("user is already a member of this group")
	ErrJornadaNotFound    = errors.New("jornada not found in this group")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPaymentNotPending  = errors.New("payment has already been reviewed")
	ErrInvalidUpgradeRole = errors.New("requested role must be admin or superadmin")
)
