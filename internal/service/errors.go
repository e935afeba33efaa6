package service

import "errors"

// Sentinel errors returned by the service layer. The messages of the
// credential errors are exactly what surfaces to the caller; in particular
// ErrInvalidCredentials is shared by "no such user" and "wrong password"
// so the response never reveals which half of the pair was wrong.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrMissingCredentials   = errors.New("Please enter both email and password")
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrWrongCurrentPassword = errors.New("Incorrect current password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
