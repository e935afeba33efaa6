package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/auth/profile.
//
// Name is always applied. A password change is requested by supplying
// NewPassword, in which case CurrentPassword must match the stored hash.
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// CreateTaskRequest is the body of POST /api/tasks.
//
// Priority defaults to LOW when omitted. A nil DueDate stores no deadline.
// Any client-supplied owner is ignored; ownership always comes from the
// authenticated caller.
type CreateTaskRequest struct {
	Title    string   `json:"title"`
	Priority Priority `json:"priority,omitempty"`
	DueDate  *Date    `json:"dueDate,omitempty"`
}

// ToggleStatusRequest is the body of PATCH /api/tasks/{id}/status.
type ToggleStatusRequest struct {
	IsDone bool `json:"isDone"`
}

// UpdateTitleRequest is the body of PATCH /api/tasks/{id}/title.
type UpdateTitleRequest struct {
	Title string `json:"title"`
}

// UpdateDueDateRequest is the body of PATCH /api/tasks/{id}/date.
// A null dueDate clears the deadline.
type UpdateDueDateRequest struct {
	DueDate *Date `json:"dueDate"`
}
