// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "", "abc123")

	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.True(t, info.HasVersion())
	assert.Equal(t, "Build version: v1.4.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}

func TestAppBuildInfo_Empty(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.False(t, info.HasVersion())
	assert.Equal(t, "N/A", info.BuildVersion())
}
