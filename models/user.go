// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package models

// UserRecord represents one registered farmer: sign-in credentials plus the
// farm profile collected during registration. Records are persisted locally
// as a single JSON array, so JSON tags define the on-disk layout.
//
// The password is stored and compared in plaintext. This mirrors the
// behaviour of the mobile application this core was ported from; the local
// store never leaves the device and no server ever sees it. Hardening it is
// a deliberate non-change for now.
type UserRecord struct {
	// ID is an opaque unique identifier assigned once at registration.
	ID string `json:"id"`

	// Name is the sign-in identifier. Uniqueness and credential matching
	// are both case-insensitive on this field.
	Name string `json:"name"`

	// Email is used for uniqueness checks and display only; it is never
	// re-validated at sign-in time.
	Email string `json:"email"`

	// Password is the plaintext sign-in secret, minimum length 6.
	Password string `json:"password"`

	// Phone is a 10-digit contact number.
	Phone string `json:"phone,omitempty"`

	FarmName string `json:"farmName"`
	FarmSize string `json:"farmSize"`
	Location string `json:"location"`
	SoilType string `json:"soilType"`

	// FarmingExperience is free text, e.g. "12 years".
	FarmingExperience string `json:"farmingExperience,omitempty"`

	// FarmType is one of the catalog farm types, e.g. "Mixed Farming".
	FarmType string `json:"farmType,omitempty"`

	// PrimaryCrops holds display labels of the crops the farmer grows.
	// May be empty.
	PrimaryCrops []string `json:"primaryCrops"`

	// FarmingSeason is "Kharif", "Rabi" or "Both".
	FarmingSeason string `json:"farmingSeason,omitempty"`

	// IrrigationType is one of the catalog irrigation types.
	IrrigationType string `json:"irrigationType,omitempty"`

	OrganicFarming bool `json:"organicFarming,omitempty"`

	// Language is the preferred UI language, one of the supported locale
	// labels. Defaults to "Hindi".
	Language string `json:"language"`

	// CreatedAt is an ISO-8601 timestamp set once at registration and never
	// mutated afterwards.
	CreatedAt string `json:"createdAt"`
}
