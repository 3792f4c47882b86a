// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/store"
	"github.com/kisaanlabs/kisaan-setu/internal/validators"
	"github.com/kisaanlabs/kisaan-setu/models"
)

// fakeKV is an in-memory store.KVStore with injectable failures.
type fakeKV struct {
	data      map[string]string
	writeErr  error
	deleteErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Read(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", store.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Write(_ context.Context, key string, value string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, key)
	return nil
}

func newTestAuthService(kv *fakeKV) AuthService {
	storages := &store.Storages{
		KV:    kv,
		Users: store.NewUserRegistry(kv, logger.Nop()),
	}
	cfg := config.ClientApp{DefaultLanguage: "Hindi"}
	return NewAuthService(storages, validators.NewRegistrationValidator(), cfg, logger.Nop())
}

func validRegistration() models.RegistrationRequest {
	return models.RegistrationRequest{
		Personal: models.PersonalInfo{
			Name:            "Asha Patel",
			Email:           "asha@farm.in",
			Phone:           "9876543210",
			Password:        "harvest1",
			ConfirmPassword: "harvest1",
		},
		Farm: models.FarmInfo{
			FarmName: "Sunrise Farm",
			FarmSize: "10 acres",
			Location: "Maharashtra, India",
			SoilType: "Black Soil",
		},
		Crops: models.CropPreferences{
			PrimaryCrops:  []string{"🌾 Wheat"},
			FarmingSeason: "Rabi",
		},
	}
}

// ---------------------------------------------------------------------------
// Initialize
// ---------------------------------------------------------------------------

func TestAuthService_Initialize_FreshInstall(t *testing.T) {
	kv := newFakeKV()
	auth := newTestAuthService(kv)

	require.Equal(t, StateUninitialized, auth.State())
	require.NoError(t, auth.Initialize(context.Background()))

	assert.Equal(t, StateAnonymous, auth.State())
	_, signedIn := auth.CurrentUser()
	assert.False(t, signedIn)

	// demo accounts were seeded and persisted
	assert.Contains(t, kv.data, store.KeyRegisteredUsers)
}

func TestAuthService_Initialize_RestoresSessionVerbatim(t *testing.T) {
	kv := newFakeKV()

	// the stored session user is deliberately absent from the registry:
	// restore must not re-validate against it
	ghost := models.UserRecord{ID: "ghost", Name: "Ghost Farmer", Email: "ghost@farm.in"}
	raw, err := json.Marshal(ghost)
	require.NoError(t, err)
	kv.data[store.KeyCurrentUser] = string(raw)

	auth := newTestAuthService(kv)
	require.NoError(t, auth.Initialize(context.Background()))

	assert.Equal(t, StateAuthenticated, auth.State())
	user, signedIn := auth.CurrentUser()
	require.True(t, signedIn)
	assert.Equal(t, "Ghost Farmer", user.Name)
}

func TestAuthService_Initialize_CorruptSessionFailsVisibly(t *testing.T) {
	kv := newFakeKV()
	kv.data[store.KeyCurrentUser] = "{not json"

	auth := newTestAuthService(kv)
	require.Error(t, auth.Initialize(context.Background()))
	assert.Equal(t, StateUninitialized, auth.State())
}

// ---------------------------------------------------------------------------
// Not-ready guard
// ---------------------------------------------------------------------------

func TestAuthService_OperationsBeforeInitialize(t *testing.T) {
	auth := newTestAuthService(newFakeKV())
	ctx := context.Background()

	_, err := auth.SignIn(ctx, "Demo User", "123456")
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = auth.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, ErrNotReady)

	assert.ErrorIs(t, auth.SignOut(ctx), ErrNotReady)
}

// ---------------------------------------------------------------------------
// SignIn
// ---------------------------------------------------------------------------

func TestAuthService_SignIn(t *testing.T) {
	kv := newFakeKV()
	auth := newTestAuthService(kv)
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	t.Run("success with case-insensitive name", func(t *testing.T) {
		user, err := auth.SignIn(ctx, "demo user", "123456")
		require.NoError(t, err)
		assert.Equal(t, "Demo User", user.Name)
		assert.Equal(t, StateAuthenticated, auth.State())

		// the session was persisted
		raw, ok := kv.data[store.KeyCurrentUser]
		require.True(t, ok)
		var stored models.UserRecord
		require.NoError(t, json.Unmarshal([]byte(raw), &stored))
		assert.Equal(t, "Demo User", stored.Name)
	})

	t.Run("wrong password and unknown name are indistinguishable", func(t *testing.T) {
		_, errWrongPassword := auth.SignIn(ctx, "Demo User", "wrong1")
		_, errUnknownName := auth.SignIn(ctx, "Nobody", "123456")

		assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownName, ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword.Error(), errUnknownName.Error())
	})

	t.Run("failed sign-in leaves session unchanged", func(t *testing.T) {
		_, err := auth.SignIn(ctx, "Demo User", "wrong1")
		require.Error(t, err)

		user, signedIn := auth.CurrentUser()
		require.True(t, signedIn)
		assert.Equal(t, "Demo User", user.Name)
	})

	t.Run("second sign-in replaces the session", func(t *testing.T) {
		user, err := auth.SignIn(ctx, "Test User", "123456")
		require.NoError(t, err)
		assert.Equal(t, "Test User", user.Name)

		current, _ := auth.CurrentUser()
		assert.Equal(t, "Test User", current.Name)
	})
}

func TestAuthService_SignIn_StorageFailureIsSurfaced(t *testing.T) {
	kv := newFakeKV()
	auth := newTestAuthService(kv)
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	kv.writeErr = errors.New("database is locked")
	_, err := auth.SignIn(ctx, "Demo User", "123456")
	require.Error(t, err)

	_, signedIn := auth.CurrentUser()
	assert.False(t, signedIn)
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register(t *testing.T) {
	kv := newFakeKV()
	auth := newTestAuthService(kv)
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	record, err := auth.Register(ctx, validRegistration())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "Asha Patel", record.Name)
	assert.Equal(t, "Sunrise Farm", record.FarmName)
	assert.Equal(t, "Hindi", record.Language, "language defaults when omitted")

	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), createdAt, time.Minute)

	// registration does not sign the user in
	assert.Equal(t, StateAnonymous, auth.State())
	_, signedIn := auth.CurrentUser()
	assert.False(t, signedIn)

	// but the new credentials work
	user, err := auth.SignIn(ctx, "asha patel", "harvest1")
	require.NoError(t, err)
	assert.Equal(t, record.ID, user.ID)
}

func TestAuthService_Register_SurvivesRestart(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()

	auth := newTestAuthService(kv)
	require.NoError(t, auth.Initialize(ctx))
	_, err := auth.Register(ctx, validRegistration())
	require.NoError(t, err)

	// a fresh service over the same store sees the new account
	restarted := newTestAuthService(kv)
	require.NoError(t, restarted.Initialize(ctx))

	user, err := restarted.SignIn(ctx, "Asha Patel", "harvest1")
	require.NoError(t, err)
	assert.Equal(t, "asha@farm.in", user.Email)
}

func TestAuthService_Register_WeakPasswordLeavesRegistryUnchanged(t *testing.T) {
	kv := newFakeKV()
	auth := newTestAuthService(kv)
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	before := kv.data[store.KeyRegisteredUsers]

	request := validRegistration()
	request.Personal.Password = "abc"
	request.Personal.ConfirmPassword = "abc"

	_, err := auth.Register(ctx, request)
	assert.ErrorIs(t, err, validators.ErrWeakPassword)
	assert.Equal(t, before, kv.data[store.KeyRegisteredUsers])
}

func TestAuthService_Register_Collisions(t *testing.T) {
	auth := newTestAuthService(newFakeKV())
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	t.Run("name collides with demo account", func(t *testing.T) {
		request := validRegistration()
		request.Personal.Name = "DEMO USER"
		_, err := auth.Register(ctx, request)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("email collides with demo account", func(t *testing.T) {
		request := validRegistration()
		request.Personal.Email = "Demo@Test.com"
		_, err := auth.Register(ctx, request)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestAuthService_Register_ValidationErrorsPropagate(t *testing.T) {
	auth := newTestAuthService(newFakeKV())
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	request := validRegistration()
	request.Personal.ConfirmPassword = "different1"

	_, err := auth.Register(ctx, request)
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)
}

// ---------------------------------------------------------------------------
// SignOut
// ---------------------------------------------------------------------------

func TestAuthService_SignOut(t *testing.T) {
	kv := newFakeKV()
	auth := newTestAuthService(kv)
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	_, err := auth.SignIn(ctx, "Demo User", "123456")
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(ctx))
	assert.Equal(t, StateAnonymous, auth.State())
	assert.NotContains(t, kv.data, store.KeyCurrentUser)

	// signing out again is a no-op
	require.NoError(t, auth.SignOut(ctx))
}

func TestAuthService_SignOut_ClearsMemoryEvenIfDeleteFails(t *testing.T) {
	kv := newFakeKV()
	auth := newTestAuthService(kv)
	ctx := context.Background()
	require.NoError(t, auth.Initialize(ctx))

	_, err := auth.SignIn(ctx, "Demo User", "123456")
	require.NoError(t, err)

	kv.deleteErr = errors.New("database is locked")
	err = auth.SignOut(ctx)
	require.Error(t, err)

	// storage still holds the stale entry, but memory is signed out
	assert.Equal(t, StateAnonymous, auth.State())
	_, signedIn := auth.CurrentUser()
	assert.False(t, signedIn)
}
