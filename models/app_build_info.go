// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildValueNotAvailable = "N/A"

// AppBuildInfo describes the server binary. The values are injected with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=..."
// and reported by GET /api/version next to the configured version.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: version,
		Date:    date,
		Commit:  commit,
	}
}

// Banner returns the lines printed on server start, with "N/A" for values
// the build did not set.
func (a AppBuildInfo) Banner() []string {
	return []string{
		fmt.Sprintf("Build version: %s", orNotAvailable(a.Version)),
		fmt.Sprintf("Build date: %s", orNotAvailable(a.Date)),
		fmt.Sprintf("Build commit: %s", orNotAvailable(a.Commit)),
	}
}

func orNotAvailable(value string) string {
	if value == "" {
		return buildValueNotAvailable
	}
	return value
}
