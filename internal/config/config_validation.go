// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; validation happens on the derived
// [ClientConfig], where defaults have already been applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.WeatherBaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.WeatherRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DefaultLanguage == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
