package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/taskflow/internal/config"
	"github.com/MKhiriev/taskflow/internal/logger"
	"github.com/MKhiriev/taskflow/internal/store"
	"github.com/MKhiriev/taskflow/internal/utils"
	"github.com/MKhiriev/taskflow/internal/validators"
	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, profile
// mutation, account deletion and the session-token lifecycle, using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the registration and profile-update input rules.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session token remains
	// valid. Defaults to seven days via config.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the email syntax and the password length (the first violated
// rule's error surfaces unchanged), hashes the password with bcrypt, and
// delegates persistence to the UserRepository. The plaintext password is
// dropped as soon as the hash is computed.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a validators rule error when the input is malformed.
//   - store.ErrEmailAlreadyExists when the email is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It requires both fields to be present, looks the account up by email and
// compares the supplied password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrMissingCredentials if either field is empty.
//   - ErrInvalidCredentials when the email is unknown OR the password does
//     not match. Both cases share one error so the caller cannot probe for
//     account existence.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("missing login credentials")
		return models.User{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("email", req.Email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// GetUserByID resolves an account by its identifier.
func (a *authService) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies profile changes for the given account.
//
// The display name is always applied, even when unchanged. A password change
// is requested by supplying NewPassword; in that case CurrentPassword must
// match the stored hash or the whole update fails with
// ErrWrongCurrentPassword and the stored hash stays untouched.
func (a *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid profile data provided")
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	user.Name = req.Name

	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			log.Info().Msg("current password mismatch on profile update")
			return models.User{}, ErrWrongCurrentPassword
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteAccount removes the account and all tasks it owns. The repository
// performs both deletions in one transaction, so the cascade is atomic from
// the caller's point of view.
func (a *authService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteUserWithTasks(ctx, userID); err != nil {
		log.Err(err).Msg("account deletion ended with error")
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	return nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session-token string.
//
// It delegates to utils.ValidateSessionToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
