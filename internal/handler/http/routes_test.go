package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/taskflow/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoutes_GuardWiring drives requests through the full router to verify
// which routes sit behind the session guard.
func TestRoutes_GuardWiring(t *testing.T) {
	userID := uuid.New()
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: userID, Email: req.Email}, nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return stubToken(tokenString, userID), nil
		},
	}
	tasks := &mockTaskService{
		listTasksFn: func(_ context.Context, ownerID uuid.UUID) ([]models.Task, error) {
			assert.Equal(t, userID, ownerID)
			return []models.Task{}, nil
		},
	}

	router := newHandlerWithConfig(t, auth, tasks, "development").Init()

	// login is public
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"john@example.com","password":"longenough"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	// task listing is guarded
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// and passes with a session cookie
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt.token"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// logout stays public
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
