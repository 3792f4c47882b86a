// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package tui

import (
	"errors"
	"strings"

	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/internal/validators"
)

func humanizeAuthError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid name or password"
	case errors.Is(err, service.ErrUserAlreadyExists):
		return "A user with this name or email already exists"
	case errors.Is(err, service.ErrNotReady):
		return "Still loading, try again in a moment"
	case errors.Is(err, validators.ErrMissingField),
		errors.Is(err, validators.ErrInvalidEmail),
		errors.Is(err, validators.ErrInvalidPhone),
		errors.Is(err, validators.ErrWeakPassword),
		errors.Is(err, validators.ErrPasswordMismatch),
		errors.Is(err, validators.ErrUnsupportedLanguage):
		return err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "database is locked") ||
		strings.Contains(s, "disk i/o error") ||
		strings.Contains(s, "storage") {
		return "Local storage problem, your change may not be saved"
	}

	return err.Error()
}
