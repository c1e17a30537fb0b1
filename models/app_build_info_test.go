// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Banner(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want []string
	}{
		{
			name: "all values",
			info: NewAppBuildInfo("v1.4.0", "2026-10-01", "9f2c1ab"),
			want: []string{"Build version: v1.4.0", "Build date: 2026-10-01", "Build commit: 9f2c1ab"},
		},
		{
			name: "local build",
			info: NewAppBuildInfo("", "", ""),
			want: []string{"Build version: N/A", "Build date: N/A", "Build commit: N/A"},
		},
		{
			name: "commit only",
			info: AppBuildInfo{Commit: "9f2c1ab"},
			want: []string{"Build version: N/A", "Build date: N/A", "Build commit: 9f2c1ab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Banner())
		})
	}
}
