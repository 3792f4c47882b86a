// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/models"
)

// Storage keys for the persisted application state.
const (
	// KeyCurrentUser holds the serialized record of the signed-in user.
	// Absent when no session is active.
	KeyCurrentUser = "currentUser"

	// KeyRegisteredUsers holds the full user collection as a JSON array.
	KeyRegisteredUsers = "registeredUsers"
)

// demoUsers are the accounts seeded into an empty registry so a fresh
// install has something to sign in with. CreatedAt is stamped at seeding
// time; every persisted record carries one.
func demoUsers() []models.UserRecord {
	createdAt := time.Now().UTC().Format(time.RFC3339)
	return []models.UserRecord{
		{
			ID:           "demo1",
			Name:         "Demo User",
			Email:        "demo@test.com",
			Password:     "123456",
			FarmName:     "Green Valley Farm",
			FarmSize:     "5 acres",
			Location:     "Punjab, India",
			SoilType:     "Alluvial Soil",
			PrimaryCrops: []string{"🌾 Wheat", "🌾 Rice"},
			Language:     "Hindi",
			CreatedAt:    createdAt,
		},
		{
			ID:           "test1",
			Name:         "Test User",
			Email:        "test@test.com",
			Password:     "123456",
			FarmName:     "Sunrise Farm",
			FarmSize:     "10 acres",
			Location:     "Maharashtra, India",
			SoilType:     "Black Soil",
			PrimaryCrops: []string{"☁️ Cotton", "🎋 Sugarcane"},
			Language:     "English",
			CreatedAt:    createdAt,
		},
	}
}

type userRegistry struct {
	kv      KVStore
	log     *logger.Logger
	records []models.UserRecord
}

// NewUserRegistry returns a UserRegistry persisting through kv. The registry
// is empty until LoadOrSeed is called.
func NewUserRegistry(kv KVStore, log *logger.Logger) UserRegistry {
	return &userRegistry{kv: kv, log: log}
}

func (r *userRegistry) LoadOrSeed(ctx context.Context) error {
	raw, err := r.kv.Read(ctx, KeyRegisteredUsers)
	if errors.Is(err, ErrKeyNotFound) {
		r.records = demoUsers()
		r.log.Debug().Str("func", "LoadOrSeed").Msg("no stored users found, seeding demo accounts")
		return r.persist(ctx)
	}
	if err != nil {
		r.log.Err(err).Str("func", "LoadOrSeed").Msg("error reading stored users")
		return err
	}

	var records []models.UserRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.log.Err(err).Str("func", "LoadOrSeed").Msg("error decoding stored users")
		return fmt.Errorf("%w: %v", ErrCorruptRegistry, err)
	}

	r.records = records
	return nil
}

func (r *userRegistry) FindByCredentials(name, password string) (models.UserRecord, bool) {
	for _, record := range r.records {
		if strings.EqualFold(record.Name, name) && record.Password == password {
			return record, true
		}
	}
	return models.UserRecord{}, false
}

func (r *userRegistry) ExistsByNameOrEmail(name, email string) bool {
	for _, record := range r.records {
		if strings.EqualFold(record.Name, name) || strings.EqualFold(record.Email, email) {
			return true
		}
	}
	return false
}

func (r *userRegistry) Insert(ctx context.Context, record models.UserRecord) error {
	r.records = append(r.records, record)
	if err := r.persist(ctx); err != nil {
		// roll back the in-memory append so memory stays consistent with disk
		r.records = r.records[:len(r.records)-1]
		return err
	}
	return nil
}

func (r *userRegistry) Records() []models.UserRecord {
	out := make([]models.UserRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *userRegistry) persist(ctx context.Context) error {
	data, err := json.Marshal(r.records)
	if err != nil {
		r.log.Err(err).Str("func", "persist").Msg("error encoding user records")
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return r.kv.Write(ctx, KeyRegisteredUsers, string(data))
}
