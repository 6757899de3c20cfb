// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

// Package main provides the entry point for the wmiutil CLI application.
package main

import (
	"os"

	"github.com/hpe-storage/wmi-host-libs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
