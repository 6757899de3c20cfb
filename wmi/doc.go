// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

/*
Package wmi is a convenience layer over the Windows Management
Instrumentation (WMI) COM interface. It wraps COM object lifetimes,
enumerates WMI classes and instances, reads typed property values, and
invokes WMI instance methods with named parameters.

Connecting and enumerating

	service, err := wmi.NewLocalService(wmi.DefaultNamespace)
	if err != nil {
		return err
	}
	defer service.Close()

	names, err := service.ClassNames("Win32_%")

Typed queries unmarshal WMI objects directly into Go structs. When a WMI
class returns a single object, pass a pointer to the Go struct. When it
returns one or more objects, pass a pointer to a slice of pointers:

	var operatingSystem *wmi.Win32_OperatingSystem
	err := wmi.ExecQuery("SELECT * FROM Win32_OperatingSystem", wmi.DefaultNamespace, &operatingSystem)

	var disks []*wmi.Win32_LogicalDisk
	err := wmi.ExecQuery("SELECT * FROM Win32_LogicalDisk", wmi.DefaultNamespace, &disks)

The destination struct mirrors the WMI class definition. Field tags guide
the unmarshalling engine:

	type Win32_Volume struct {
		BlockSizeInBytes       uint64 `wmi:"BlockSize"`            // rename
		MyPrivateData          uint64 `wmi:"-"`                    // ignore
		ConfigManagerErrorCode uint32 `wmi:",nil=0xFFFFFFFF"`      // null default
	}

Method invocation builds a method's in-parameter object from named values,
executes it synchronously, and drains the out-parameter object into a map:

	instance, err := service.FindFirstInstance(wmi.InstanceQuery("Win32_LogicalDisk", "DeviceID", "C:"))
	if err != nil {
		return err
	}
	defer instance.Close()

	ret, outParams, err := instance.InvokeMethod("Chkdsk", map[string]interface{}{
		"FixErrors":       false,
		"OkToRunAtBootUp": false,
	})

Every non-S_OK HRESULT is translated into a *WmiError carrying the code and
the system-formatted message.
*/
package wmi
