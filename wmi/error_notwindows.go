// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build !windows
// +build !windows

package wmi

func formatWmiMessage(hres uintptr) string {
	return ""
}
