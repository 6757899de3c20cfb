// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"errors"
	"fmt"
)

// HRESULT values shared with the COM layer
const (
	S_OK    = 0
	S_FALSE = 1
)

// WBEM status and error codes returned by the WMI provider
const (
	WBEM_S_NO_ERROR            = 0
	WBEM_S_FALSE               = 1
	WBEM_S_TIMEDOUT            = 0x40004
	WBEM_S_NO_MORE_DATA        = 0x40005
	WBEM_S_OPERATION_CANCELLED = 0x40006

	WBEM_E_FAILED                    = 0x80041001
	WBEM_E_NOT_FOUND                 = 0x80041002
	WBEM_E_ACCESS_DENIED             = 0x80041003
	WBEM_E_PROVIDER_FAILURE          = 0x80041004
	WBEM_E_TYPE_MISMATCH             = 0x80041005
	WBEM_E_OUT_OF_MEMORY             = 0x80041006
	WBEM_E_INVALID_CONTEXT           = 0x80041007
	WBEM_E_INVALID_PARAMETER         = 0x80041008
	WBEM_E_NOT_AVAILABLE             = 0x80041009
	WBEM_E_CRITICAL_ERROR            = 0x8004100A
	WBEM_E_NOT_SUPPORTED             = 0x8004100C
	WBEM_E_INVALID_NAMESPACE         = 0x8004100E
	WBEM_E_INVALID_OBJECT            = 0x8004100F
	WBEM_E_INVALID_CLASS             = 0x80041010
	WBEM_E_PROVIDER_NOT_FOUND        = 0x80041011
	WBEM_E_INVALID_OPERATION         = 0x80041016
	WBEM_E_INVALID_QUERY             = 0x80041017
	WBEM_E_INVALID_QUERY_TYPE        = 0x80041018
	WBEM_E_ALREADY_EXISTS            = 0x80041019
	WBEM_E_ILLEGAL_NULL              = 0x80041028
	WBEM_E_INVALID_METHOD            = 0x8004102E
	WBEM_E_INVALID_METHOD_PARAMETERS = 0x8004102F
	WBEM_E_INVALID_PROPERTY          = 0x80041031
	WBEM_E_CALL_CANCELLED            = 0x80041032
	WBEM_E_SHUTTING_DOWN             = 0x80041033
	WBEM_E_INVALID_OBJECT_PATH       = 0x8004103A
	WBEM_E_METHOD_NOT_IMPLEMENTED    = 0x80041055
	WBEM_E_METHOD_DISABLED           = 0x80041056
	WBEM_E_UNPARSABLE_QUERY          = 0x80041058
	WBEM_E_PRIVILEGE_NOT_HELD        = 0x80041062
	WBEM_E_TIMED_OUT                 = 0x80041069
)

var (
	// ErrNoResults is returned when a query or enumeration produced an
	// empty result set but a result was required.
	ErrNoResults = errors.New("no results found")

	// ErrNotSupported is returned from entry points on platforms without
	// a WMI provider.
	ErrNotSupported = errors.New("WMI is not supported on this platform")
)

// WmiError wraps a failed HRESULT from a COM/WMI call
type WmiError struct {
	hres uintptr
}

// NewWmiError translates a non-S_OK HRESULT into an error value
func NewWmiError(hres uintptr) *WmiError {
	return &WmiError{hres: hres}
}

// Code returns the raw HRESULT
func (w *WmiError) Code() uintptr {
	return w.hres
}

func (w *WmiError) String() string {
	return w.Error()
}

func (w *WmiError) Error() string {
	if msg := formatWmiMessage(w.hres); msg != "" {
		return fmt.Sprintf("WMI error [%08Xh]: %s", w.hres, msg)
	}
	return fmt.Sprintf("WMI error [%08Xh]", w.hres)
}

// SUCCEEDED reports whether an HRESULT indicates success
func SUCCEEDED(hres uintptr) bool {
	return int32(hres) >= 0
}

// FAILED reports whether an HRESULT indicates failure
func FAILED(hres uintptr) bool {
	return int32(hres) < 0
}
