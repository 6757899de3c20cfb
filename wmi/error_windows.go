// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"os"
	"strings"
	"syscall"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

var wmiModule syscall.Handle

func init() {
	// WBEM facility messages live in wmiutils.dll, not the system table
	file := os.ExpandEnv("${windir}\\system32\\wbem\\wmiutils.dll")
	wmiModule, _ = syscall.LoadLibrary(file)
}

func formatWmiMessage(hres uintptr) string {
	var flags uint32 = syscall.FORMAT_MESSAGE_FROM_SYSTEM |
		syscall.FORMAT_MESSAGE_FROM_HMODULE |
		syscall.FORMAT_MESSAGE_ARGUMENT_ARRAY |
		syscall.FORMAT_MESSAGE_IGNORE_INSERTS

	buf := make([]uint16, 300)
	n, err := windows.FormatMessage(flags, uintptr(wmiModule), uint32(hres), 0, buf, nil)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(utf16.Decode(buf[:n])), "\r\n")
}
