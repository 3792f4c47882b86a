// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package service

import (
	"context"

	"github.com/kisaanlabs/kisaan-setu/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionState describes where the auth service is in its lifecycle.
type SessionState int

const (
	// StateUninitialized means Initialize has not been called (or failed).
	StateUninitialized SessionState = iota
	// StateLoading means Initialize is in progress.
	StateLoading
	// StateAnonymous means the service is ready and nobody is signed in.
	StateAnonymous
	// StateAuthenticated means the service is ready and a user is signed in.
	StateAuthenticated
)

// AuthService owns the in-memory session and the user registry. All
// mutations are serialized internally, so it is safe to call from
// concurrent goroutines.
//
// Initialize must complete successfully before SignIn, Register or SignOut
// are accepted; until then they return [ErrNotReady].
type AuthService interface {
	// Initialize loads the persisted registry (seeding demo accounts on
	// first run) and restores any persisted session verbatim.
	Initialize(ctx context.Context) error

	// SignIn matches name case-insensitively and password exactly. On no
	// match it returns [ErrInvalidCredentials] without saying which of the
	// two was wrong. A sign-in while already authenticated replaces the
	// session.
	SignIn(ctx context.Context, name, password string) (models.UserRecord, error)

	// Register validates the request, rejects name/email collisions with
	// [ErrUserAlreadyExists], assigns an ID and creation timestamp, and
	// persists the new record. It does not sign the new user in.
	Register(ctx context.Context, request models.RegistrationRequest) (models.UserRecord, error)

	// SignOut clears the session. The in-memory session is cleared even if
	// deleting the persisted copy fails; the storage error is still
	// returned. Signing out while anonymous is a no-op.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in user, if any.
	CurrentUser() (models.UserRecord, bool)

	// State reports the current lifecycle state.
	State() SessionState
}

// WeatherService produces weather reports enriched with farming advice.
// When the provider is unreachable it falls back to the last cached report,
// then to built-in demo data, so callers always get a report. The report's
// Source field tells the caller whether the data is live.
type WeatherService interface {
	ReportByCity(ctx context.Context, city string) models.WeatherReport
	ReportByCoordinates(ctx context.Context, lat, lon float64) models.WeatherReport
}

// CalculatorService is the two-step cultivation profit calculator. Cost must
// be calculated before profit; calling Profit first returns
// [ErrCostNotCalculated].
type CalculatorService interface {
	// TotalCost sums the cost inputs, remembers the result and returns it.
	TotalCost(costs models.CultivationCosts) float64

	// Profit computes revenue as quantity times price and subtracts the
	// remembered total cost.
	Profit(quantityQuintals, pricePerQuintal float64) (models.ProfitResult, error)

	// Reset forgets the remembered cost, returning the calculator to its
	// initial state.
	Reset()
}
