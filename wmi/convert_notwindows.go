// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build !windows
// +build !windows

package wmi

import (
	ole "github.com/go-ole/go-ole"
)

func newStringArrayVariant(values []string) (ole.VARIANT, error) {
	return ole.VARIANT{}, ErrNotSupported
}
