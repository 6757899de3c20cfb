// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows

// Package winutil provides Windows-specific process utilities.
package winutil

import (
	"golang.org/x/sys/windows"
)

// IsProcessElevated reports whether the current process runs with an
// elevated (administrator) token. WMI method invocation and several WMI
// providers require elevation.
func IsProcessElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
