// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	log "github.com/hpe-storage/wmi-host-libs/logger"
)

// Win32_LogicalDisk WMI class
type Win32_LogicalDisk struct {
	Access                       uint16
	Availability                 uint16
	BlockSize                    uint64
	Caption                      string
	Compressed                   bool
	ConfigManagerErrorCode       uint32 `wmi:",nil=0xFFFFFFFF"` // If property not available, use 0xFFFFFFFF
	ConfigManagerUserConfig      bool
	CreationClassName            string
	Description                  string
	DeviceID                     string
	DriveType                    uint32
	ErrorCleared                 bool
	ErrorDescription             string
	ErrorMethodology             string
	FileSystem                   string
	FreeSpace                    uint64
	InstallDate                  string
	LastErrorCode                uint32
	MaximumComponentLength       uint32
	MediaType                    uint32
	Name                         string
	NumberOfBlocks               uint64
	PNPDeviceID                  string
	PowerManagementCapabilities  []uint16
	PowerManagementSupported     bool
	ProviderName                 string
	Purpose                      string
	QuotasDisabled               bool
	QuotasIncomplete             bool
	QuotasRebuilding             bool
	Size                         uint64
	Status                       string
	StatusInfo                   uint16
	SupportsDiskQuotas           bool
	SupportsFileBasedCompression bool
	SystemCreationClassName      string
	SystemName                   string
	VolumeDirty                  bool
	VolumeName                   string
	VolumeSerialNumber           string
}

// GetWin32LogicalDisk enumerates this host's Win32_LogicalDisk objects
func GetWin32LogicalDisk() (disks []*Win32_LogicalDisk, err error) {
	log.Tracef(">>>>> GetWin32LogicalDisk")
	defer log.Trace("<<<<< GetWin32LogicalDisk")

	// Execute the WMI query
	err = ExecQuery("SELECT * FROM Win32_LogicalDisk", DefaultNamespace, &disks)
	return disks, err
}
