// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware and the task handlers.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the session middleware when the
	// incoming request carries no session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrNoIdentityInContext indicates that a guarded handler executed
	// without a resolved owner identity in its context. This can only
	// happen through a route-wiring mistake and is treated as an
	// authentication failure.
	ErrNoIdentityInContext = errors.New("no owner identity in request context")

	// ErrInvalidTaskID is returned when the {id} URL parameter of a task
	// route is not a valid UUID.
	ErrInvalidTaskID = errors.New("invalid task id")
)
