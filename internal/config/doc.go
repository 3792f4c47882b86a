// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

// Package config loads, merges and validates the application configuration.
//
// Settings are read from three sources and merged field by field, the first
// source to set a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (only consulted when a path was given)
//
// [GetStructuredConfig] returns the raw merged configuration;
// [GetClientConfig] returns the application view with defaults applied.
package config
