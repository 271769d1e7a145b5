// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfoNotAvailable replaces build metadata that was not injected at
// link time.
const BuildInfoNotAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into the binary with
// -ldflags. It is printed at startup and written to the log so a report can
// be matched to a release.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns the build metadata with every empty value replaced
// by [BuildInfoNotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return BuildInfoNotAvailable
	}
	return v
}

// BuildVersion returns the release version, e.g. "v1.2.0".
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the commit hash of the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
