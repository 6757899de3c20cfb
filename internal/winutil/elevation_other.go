// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build !windows

// Package winutil provides Windows-specific process utilities.
package winutil

// IsProcessElevated always reports false on platforms without a Windows
// token model.
func IsProcessElevated() bool {
	return false
}
