package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/service"
	"github.com/MKhiriev/taskflow/internal/utils"
)

// sessionAuth is the HTTP middleware guarding every protected operation.
//
// It reads the session cookie, validates the signed token via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated owner's ID in the request context under
// [utils.OwnerIDCtxKey] before delegating to the next handler. No handler
// behind this middleware ever executes without a resolved owner identity,
// and downstream code must not re-derive identity from any other source.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent.
//   - The token is expired, tampered with, or otherwise invalid
//     ([service.ErrTokenIsExpiredOrInvalid]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest]. A verification failure is never fatal to the
// process; it terminates the single request only.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			utils.WriteError(w, "Not Authenticated!", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("token expired or invalid")
			default:
				log.Err(err).Msg("error occurred during parsing token")
			}
			utils.WriteError(w, "Invalid Token", http.StatusUnauthorized)
			return
		}

		// Store the authenticated owner's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.OwnerIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
