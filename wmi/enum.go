// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

// IEnumWbemClassObjectVtbl is the IEnumWbemClassObject COM virtual table
type IEnumWbemClassObjectVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	Reset          uintptr
	Next           uintptr
	NextAsync      uintptr
	Clone          uintptr
	Skip           uintptr
}

// Enum iterates a WMI result set produced by ExecQuery or
// CreateInstanceEnum
type Enum struct {
	enum    *ole.IUnknown
	vTable  *IEnumWbemClassObjectVtbl
	service *Service
}

func newEnum(enumerator *ole.IUnknown, service *Service) *Enum {
	return &Enum{
		enum:    enumerator,
		vTable:  (*IEnumWbemClassObjectVtbl)(unsafe.Pointer(enumerator.RawVTable)),
		service: service,
	}
}

// Close releases the underlying enumerator
func (e *Enum) Close() {
	if e != nil && e.enum != nil {
		e.enum.Release()
		e.enum = nil
	}
}

// Next returns the next object instance in this iteration, or nil once the
// result set is exhausted. The caller must Close() the returned instance.
func (e *Enum) Next() (*Instance, error) {
	var pObject *ole.IUnknown
	var uReturned uint32

	res, _, _ := syscall.SyscallN(
		e.vTable.Next,                       // IEnumWbemClassObject::Next(
		uintptr(unsafe.Pointer(e.enum)),     // IEnumWbemClassObject ptr
		uintptr(WBEM_INFINITE),              // [in]  long             lTimeout,
		uintptr(1),                          // [in]  ULONG            uCount,
		uintptr(unsafe.Pointer(&pObject)),   // [out] IWbemClassObject **apObjects,
		uintptr(unsafe.Pointer(&uReturned))) // [out] ULONG            *puReturned)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	if uReturned < 1 {
		switch res {
		case WBEM_S_NO_ERROR, WBEM_S_FALSE:
			// No more elements
			return nil, nil
		default:
			return nil, NewWmiError(res)
		}
	}

	return newInstance(pObject, e.service), nil
}

// NextObject obtains the next instance in the enumeration and populates the
// struct pointed to by target. The first return value reports whether the
// enumeration is done.
func NextObject(enum *Enum, target interface{}) (bool, error) {
	instance, err := enum.Next()
	if err != nil {
		return false, err
	}
	if instance == nil {
		return true, nil
	}
	defer instance.Close()

	return false, instance.GetAll(target)
}
