// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package models

// AppBuildInfo is the build metadata stamped into the binary via linker
// flags. The TUI shows it on the version screen; unset fields render as N/A.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo wraps the raw linker-flag values. Empty strings are
// allowed; local builds usually have all three unset.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version string.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns when the binary was built.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the commit hash the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
