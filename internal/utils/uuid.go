// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package utils

import "github.com/google/uuid"

// UUIDGenerator issues the opaque identifiers assigned to user records at
// registration. Version 7 UUIDs are time-ordered, which keeps the persisted
// registry roughly sorted by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to v4 if the system clock
// refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
