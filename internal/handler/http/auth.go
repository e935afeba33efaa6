package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/utils"
	"github.com/MKhiriev/taskflow/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token.SignedString, h.cfg.App.TokenDuration)
	utils.WriteJSON(w, models.RegisterResponse{UserID: registeredUser.UserID, Email: registeredUser.Email}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		respondError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.UserID.String()).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token.SignedString, h.cfg.App.TokenDuration)
	utils.WriteJSON(w, models.LoginResponse{UserID: foundUser.UserID, Email: foundUser.Email, Name: foundUser.Name}, http.StatusOK)
}

// logout clears the session cookie unconditionally. It sits outside the
// session guard and succeeds even when no session exists, so repeated calls
// are harmless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out"}, http.StatusOK)
}

// me reports the resolved identity of the current session. Clients use it to
// detect "am I logged in" without inspecting the cookie themselves.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		respondError(w, r, ErrNoIdentityInContext)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{Valid: true, UserID: ownerID}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentityInContext)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, ownerID, req)
	if err != nil {
		log.Err(err).Msg("profile update failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{UserID: updatedUser.UserID, Name: updatedUser.Name, Email: updatedUser.Email}, http.StatusOK)
}

// deleteAccount removes the caller's account together with every task they
// own, then drops the session cookie. The two deletions are atomic.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentityInContext)
		return
	}

	if err := h.services.AuthService.DeleteAccount(ctx, ownerID); err != nil {
		log.Err(err).Msg("account deletion failed")
		utils.WriteError(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "Account deleted"}, http.StatusOK)
}
