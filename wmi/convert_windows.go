// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

// newStringArrayVariant builds a VT_ARRAY|VT_BSTR variant from a Go string
// slice for use as a WMI method or property value.
func newStringArrayVariant(values []string) (ole.VARIANT, error) {
	array, _, _ := procSafeArrayCreateVector.Call(
		uintptr(ole.VT_BSTR),
		uintptr(0),
		uintptr(len(values)))
	if array == 0 {
		return ole.VARIANT{}, NewWmiError(WBEM_E_OUT_OF_MEMORY)
	}

	for i, value := range values {
		index := int64(i)
		bstr := ole.SysAllocStringLen(value)
		res, _, _ := procSafeArrayPutElement.Call(
			array,
			uintptr(unsafe.Pointer(&index)),
			uintptr(unsafe.Pointer(bstr)))
		ole.SysFreeString(bstr)
		if FAILED(res) {
			_, _, _ = procSafeArrayDestroy.Call(array)
			return ole.VARIANT{}, NewWmiError(res)
		}
	}

	return ole.NewVariant(ole.VT_ARRAY|ole.VT_BSTR, int64(array)), nil
}

// toIUnknownArray extracts an array of IUnknown COM objects from a
// SAFEARRAY conversion. Callers own the returned references.
func toIUnknownArray(sac *ole.SafeArrayConversion) []*ole.IUnknown {
	totalElements, _ := sac.TotalElements(0)
	iUnknownArray := make([]*ole.IUnknown, totalElements)

	for i := int32(0); i < totalElements; i++ {
		var pv *ole.IUnknown
		_, _, _ = procSafeArrayGetElement.Call(
			uintptr(unsafe.Pointer(sac.Array)),
			uintptr(unsafe.Pointer(&i)),
			uintptr(unsafe.Pointer(&pv)))
		iUnknownArray[i] = pv
	}

	return iUnknownArray
}
