package services

import "github.com/pkg/errors"

// Verification failures. ErrUnknownUser and ErrWrongPassword are kept apart for
// audit logging but both match ErrInvalidCredentials under errors.Is, which is
// all callers outside this package should test for.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownUser        = errors.Wrap(ErrInvalidCredentials, "unknown user")
	ErrWrongPassword      = errors.Wrap(ErrInvalidCredentials, "wrong password")
	ErrInternal           = errors.New("internal failure")
)
