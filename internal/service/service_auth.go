// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kisaanlabs/kisaan-setu/internal/catalog"
	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/store"
	"github.com/kisaanlabs/kisaan-setu/internal/utils"
	"github.com/kisaanlabs/kisaan-setu/internal/validators"
	"github.com/kisaanlabs/kisaan-setu/models"
)

type authService struct {
	mu sync.RWMutex

	kv        store.KVStore
	users     store.UserRegistry
	validator validators.Validator
	uuid      *utils.UUIDGenerator

	appCfg config.ClientApp
	logger *logger.Logger

	state   SessionState
	current *models.UserRecord
}

func NewAuthService(storages *store.Storages, validator validators.Validator, appCfg config.ClientApp, logger *logger.Logger) AuthService {
	return &authService{
		kv:        storages.KV,
		users:     storages.Users,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		appCfg:    appCfg,
		logger:    logger,
		state:     StateUninitialized,
	}
}

func (a *authService) Initialize(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = StateLoading

	if err := a.users.LoadOrSeed(ctx); err != nil {
		a.logger.Err(err).Str("func", "Initialize").Msg("error loading user registry")
		a.state = StateUninitialized
		return err
	}

	raw, err := a.kv.Read(ctx, store.KeyCurrentUser)
	if errors.Is(err, store.ErrKeyNotFound) {
		a.state = StateAnonymous
		return nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "Initialize").Msg("error reading stored session")
		a.state = StateUninitialized
		return err
	}

	// restored verbatim, without re-checking against the registry
	var user models.UserRecord
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		a.logger.Err(err).Str("func", "Initialize").Msg("error decoding stored session")
		a.state = StateUninitialized
		return fmt.Errorf("decode stored session: %w", err)
	}

	a.current = &user
	a.state = StateAuthenticated
	a.logger.Debug().Str("func", "Initialize").Str("user", user.Name).Msg("session restored")
	return nil
}

func (a *authService) SignIn(ctx context.Context, name, password string) (models.UserRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureReady(); err != nil {
		return models.UserRecord{}, err
	}

	user, found := a.users.FindByCredentials(name, password)
	if !found {
		return models.UserRecord{}, ErrInvalidCredentials
	}

	data, err := json.Marshal(user)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("encode session: %w", err)
	}
	if err := a.kv.Write(ctx, store.KeyCurrentUser, string(data)); err != nil {
		a.logger.Err(err).Str("func", "SignIn").Msg("error persisting session")
		return models.UserRecord{}, err
	}

	a.current = &user
	a.state = StateAuthenticated
	return user, nil
}

func (a *authService) Register(ctx context.Context, request models.RegistrationRequest) (models.UserRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureReady(); err != nil {
		return models.UserRecord{}, err
	}

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.UserRecord{}, err
	}

	if a.users.ExistsByNameOrEmail(request.Personal.Name, request.Personal.Email) {
		return models.UserRecord{}, ErrUserAlreadyExists
	}

	record := a.buildRecord(request)
	if err := a.users.Insert(ctx, record); err != nil {
		a.logger.Err(err).Str("func", "Register").Msg("error persisting new user")
		return models.UserRecord{}, err
	}

	a.logger.Debug().Str("func", "Register").Str("user", record.Name).Msg("user registered")

	// the new user signs in separately; no session is created here
	return record, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureReady(); err != nil {
		return err
	}

	// memory is cleared first so the caller is signed out even when the
	// persisted delete below fails
	a.current = nil
	a.state = StateAnonymous

	if err := a.kv.Delete(ctx, store.KeyCurrentUser); err != nil {
		a.logger.Err(err).Str("func", "SignOut").Msg("error deleting stored session")
		return err
	}

	return nil
}

func (a *authService) CurrentUser() (models.UserRecord, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.current == nil {
		return models.UserRecord{}, false
	}
	return *a.current, true
}

func (a *authService) State() SessionState {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.state
}

// ensureReady is called with the mutex held.
func (a *authService) ensureReady() error {
	if a.state != StateAnonymous && a.state != StateAuthenticated {
		return ErrNotReady
	}
	return nil
}

func (a *authService) buildRecord(request models.RegistrationRequest) models.UserRecord {
	language := request.Personal.Language
	if language == "" {
		language = a.appCfg.DefaultLanguage
	}
	if language == "" {
		language = catalog.DefaultLanguage
	}

	return models.UserRecord{
		ID:                a.uuid.Generate(),
		Name:              request.Personal.Name,
		Email:             request.Personal.Email,
		Password:          request.Personal.Password,
		Phone:             request.Personal.Phone,
		FarmName:          request.Farm.FarmName,
		FarmSize:          request.Farm.FarmSize,
		Location:          request.Farm.Location,
		SoilType:          request.Farm.SoilType,
		FarmingExperience: request.Farm.FarmingExperience,
		FarmType:          request.Farm.FarmType,
		PrimaryCrops:      request.Crops.PrimaryCrops,
		FarmingSeason:     request.Crops.FarmingSeason,
		IrrigationType:    request.Crops.IrrigationType,
		OrganicFarming:    request.Crops.OrganicFarming,
		Language:          language,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
}
