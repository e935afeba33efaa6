package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/taskflow/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldEmail targets the email address of a registration request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a registration or
	// profile-update request.
	FieldPassword = "password"

	// FieldTitle targets the title of a task create or title-update request.
	FieldTitle = "title"

	// FieldPriority targets the priority level of a task create request.
	FieldPriority = "priority"
)

// minPasswordLength is the minimum accepted password length in bytes.
const minPasswordLength = 8

// RequestValidator validates inbound API request bodies. Rules are checked
// in declaration order and the first violated rule's error is returned, so
// the caller always surfaces a single, deterministic message.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, *value, fields...)

	case models.CreateTaskRequest:
		return v.validateCreateTaskRequest(ctx, value, fields...)
	case *models.CreateTaskRequest:
		return v.validateCreateTaskRequest(ctx, *value, fields...)

	case models.UpdateTitleRequest:
		return v.validateUpdateTitleRequest(ctx, value, fields...)
	case *models.UpdateTitleRequest:
		return v.validateUpdateTitleRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	for _, field := range scope(fields, FieldEmail, FieldPassword) {
		switch field {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateProfileRequest(_ context.Context, req models.UpdateProfileRequest, fields ...string) error {
	for _, field := range scope(fields, FieldPassword) {
		switch field {
		case FieldPassword:
			// a new password is optional; when present it follows the
			// registration rule
			if req.NewPassword != "" && len(req.NewPassword) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateTaskRequest(_ context.Context, req models.CreateTaskRequest, fields ...string) error {
	for _, field := range scope(fields, FieldTitle, FieldPriority) {
		switch field {
		case FieldTitle:
			if req.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if req.Priority != "" && !req.Priority.Valid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateTitleRequest(_ context.Context, req models.UpdateTitleRequest, fields ...string) error {
	for _, field := range scope(fields, FieldTitle) {
		switch field {
		case FieldTitle:
			if req.Title == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// scope returns the requested field subset, or every known field for the
// request type when the caller did not narrow the validation.
func scope(requested []string, all ...string) []string {
	if len(requested) == 0 {
		return all
	}
	return requested
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
