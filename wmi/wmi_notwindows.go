// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build !windows
// +build !windows

package wmi

// ExecQuery fails with ErrNotSupported on platforms without a WMI provider
func ExecQuery(wqlQuery string, namespace string, dst interface{}) error {
	return ErrNotSupported
}

// Cleanup is a no-op on platforms without a WMI provider
func Cleanup() {
}
