// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build !windows

package cli

import (
	"github.com/spf13/cobra"

	"github.com/hpe-storage/wmi-host-libs/wmi"
)

func runClasses(cmd *cobra.Command, namespace, filter string, showProperties, showMethods bool) error {
	return wmi.ErrNotSupported
}

func runDump(cmd *cobra.Command, namespace, className, where string, showMethods bool) error {
	return wmi.ErrNotSupported
}

func runInvoke(cmd *cobra.Command, namespace, className, methodName, where string, inputArgs []string) error {
	return wmi.ErrNotSupported
}
