package http

import (
	"net/http"
	"time"
)

// sessionCookieName is the name of the HTTP cookie carrying the signed
// session token.
const sessionCookieName = "token"

// setSessionCookie attaches the signed session token to the response.
//
// Attributes follow the session contract: HttpOnly so client-side code can
// never read the token, Path "/" so the cookie accompanies every route, and
// a max-age matching the token lifetime. In production the client and the
// server live on different origins, so the cookie must be Secure with
// SameSite=None; in development a Lax policy is used instead.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, lifetime time.Duration) {
	sameSite := http.SameSiteLaxMode
	if h.cfg.App.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.App.IsProduction(),
		SameSite: sameSite,
		MaxAge:   int(lifetime.Seconds()),
	})
}

// clearSessionCookie expires the session cookie. It mirrors the attributes
// of setSessionCookie so the browser matches and drops the stored cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	if h.cfg.App.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.App.IsProduction(),
		SameSite: sameSite,
		MaxAge:   -1,
	})
}
