package models

import "github.com/google/uuid"

// RegisterResponse is returned by POST /api/auth/register.
// It deliberately carries only the public identity fields; the password
// hash never leaves the server.
type RegisterResponse struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}

// ProfileResponse is returned by PUT /api/auth/profile.
type ProfileResponse struct {
	UserID uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// SessionResponse is returned by GET /api/auth/me so clients can detect
// "am I logged in" without inspecting the cookie themselves.
type SessionResponse struct {
	Valid  bool      `json:"valid"`
	UserID uuid.UUID `json:"userId"`
}

// MessageResponse is the generic {message} body used by logout, task
// deletion and account deletion.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}
