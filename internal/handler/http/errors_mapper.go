package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/service"
	"github.com/MKhiriev/taskflow/internal/store"
	"github.com/MKhiriev/taskflow/internal/utils"
	"github.com/MKhiriev/taskflow/internal/validators"
)

// errorMapping binds a sentinel error to the HTTP status and the exact
// message surfaced to the caller. Anything not listed collapses into a
// generic 500 so that no internal detail ever leaks.
type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	// validation (400): the first violated rule's message surfaces unchanged
	{validators.ErrInvalidEmail, http.StatusBadRequest, validators.ErrInvalidEmail.Error()},
	{validators.ErrPasswordTooShort, http.StatusBadRequest, validators.ErrPasswordTooShort.Error()},
	{validators.ErrEmptyTitle, http.StatusBadRequest, validators.ErrEmptyTitle.Error()},
	{validators.ErrInvalidPriority, http.StatusBadRequest, validators.ErrInvalidPriority.Error()},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid data provided"},

	// credentials (400): unknown email and wrong password share one message
	{service.ErrMissingCredentials, http.StatusBadRequest, service.ErrMissingCredentials.Error()},
	{service.ErrInvalidCredentials, http.StatusBadRequest, service.ErrInvalidCredentials.Error()},
	{service.ErrWrongCurrentPassword, http.StatusBadRequest, service.ErrWrongCurrentPassword.Error()},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already exists"},

	// session (401)
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Invalid Token"},
	{ErrNoIdentityInContext, http.StatusUnauthorized, "Not Authenticated!"},

	// ownership (403): absent tasks and foreign tasks are indistinguishable
	{store.ErrTaskNotFound, http.StatusForbidden, "Unauthorized or Task not found"},
	{ErrInvalidTaskID, http.StatusForbidden, "Unauthorized or Task not found"},

	{store.ErrNoUserWasFound, http.StatusNotFound, "User not found"},
}

// respondError translates err into its HTTP representation and writes the
// uniform JSON error body. Unmapped errors are logged and answered with a
// generic 500 message only.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			utils.WriteError(w, m.message, m.status)
			return
		}
	}

	logger.FromRequest(r).Err(err).Msg("unexpected error occurred during request handling")
	utils.WriteError(w, "Internal Server Error", http.StatusInternalServerError)
}
