// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import "reflect"

// CIMTYPE_ENUMERATION defines values that specify the different CIM data types
type CIMTYPE_ENUMERATION uint32

const (
	CIM_ILLEGAL    CIMTYPE_ENUMERATION = 0xFFF
	CIM_EMPTY      CIMTYPE_ENUMERATION = 0
	CIM_SINT8      CIMTYPE_ENUMERATION = 16
	CIM_UINT8      CIMTYPE_ENUMERATION = 17
	CIM_SINT16     CIMTYPE_ENUMERATION = 2
	CIM_UINT16     CIMTYPE_ENUMERATION = 18
	CIM_SINT32     CIMTYPE_ENUMERATION = 3
	CIM_UINT32     CIMTYPE_ENUMERATION = 19
	CIM_SINT64     CIMTYPE_ENUMERATION = 20
	CIM_UINT64     CIMTYPE_ENUMERATION = 21
	CIM_REAL32     CIMTYPE_ENUMERATION = 4
	CIM_REAL64     CIMTYPE_ENUMERATION = 5
	CIM_BOOLEAN    CIMTYPE_ENUMERATION = 11
	CIM_STRING     CIMTYPE_ENUMERATION = 8
	CIM_DATETIME   CIMTYPE_ENUMERATION = 101
	CIM_REFERENCE  CIMTYPE_ENUMERATION = 102
	CIM_CHAR16     CIMTYPE_ENUMERATION = 103
	CIM_OBJECT     CIMTYPE_ENUMERATION = 13
	CIM_FLAG_ARRAY CIMTYPE_ENUMERATION = 0x2000
)

// WBEM_GENERIC_FLAG_TYPE indicates the mode of a WMI call
type WBEM_GENERIC_FLAG_TYPE uint32

const (
	WBEM_FLAG_RETURN_WBEM_COMPLETE WBEM_GENERIC_FLAG_TYPE = 0x0
	WBEM_FLAG_RETURN_IMMEDIATELY   WBEM_GENERIC_FLAG_TYPE = 0x10
	WBEM_FLAG_FORWARD_ONLY         WBEM_GENERIC_FLAG_TYPE = 0x20
	WBEM_FLAG_SHALLOW              WBEM_GENERIC_FLAG_TYPE = 0x1
)

// WBEM_TIMEOUT_TYPE specifies the timeout for IEnumWbemClassObject::Next
type WBEM_TIMEOUT_TYPE uint32

const (
	WBEM_NO_WAIT  WBEM_TIMEOUT_TYPE = 0
	WBEM_INFINITE WBEM_TIMEOUT_TYPE = 0xFFFFFFFF
)

// WBEM_CONDITION_FLAG_TYPE holds flags used with IWbemClassObject::GetNames
// and BeginEnumeration
type WBEM_CONDITION_FLAG_TYPE uint32

const (
	WBEM_FLAG_ALWAYS         WBEM_CONDITION_FLAG_TYPE = 0
	WBEM_FLAG_KEYS_ONLY      WBEM_CONDITION_FLAG_TYPE = 0x4
	WBEM_FLAG_LOCAL_ONLY     WBEM_CONDITION_FLAG_TYPE = 0x10
	WBEM_FLAG_SYSTEM_ONLY    WBEM_CONDITION_FLAG_TYPE = 0x30
	WBEM_FLAG_NONSYSTEM_ONLY WBEM_CONDITION_FLAG_TYPE = 0x40
)

// WBEM_FLAVOR_TYPE lists qualifier flavors
type WBEM_FLAVOR_TYPE uint32

const (
	WBEM_FLAVOR_DONT_PROPAGATE    WBEM_FLAVOR_TYPE = 0
	WBEM_FLAVOR_ORIGIN_PROPAGATED WBEM_FLAVOR_TYPE = 0x20
	WBEM_FLAVOR_ORIGIN_SYSTEM     WBEM_FLAVOR_TYPE = 0x40
	WBEM_FLAVOR_MASK_ORIGIN       WBEM_FLAVOR_TYPE = 0x60
)

// COM security constants used when connecting the locator
const (
	RPC_C_AUTHN_LEVEL_DEFAULT = 0
	RPC_C_AUTHN_LEVEL_CALL    = 3

	RPC_C_IMP_LEVEL_IMPERSONATE = 3

	RPC_C_AUTHN_WINNT = 10
	RPC_C_AUTHZ_NONE  = 0

	EOAC_NONE = 0

	WBEM_FLAG_CONNECT_USE_MAX_WAIT = 0x80
)

// DefaultNamespace is the namespace used when callers have no reason to
// pick another one.
const DefaultNamespace = `ROOT\CIMV2`

// System properties carried by every WMI object
const (
	wmiClassKey   = "__CLASS"
	wmiRelPathKey = "__RELPATH"
	wmiPathKey    = "__PATH"
)

// MethodDef describes one method exposed by a WMI class: its name and the
// names of its input and output parameters.
type MethodDef struct {
	Name      string
	InParams  []string
	OutParams []string
}

// cimTypeToGoType converts a CIMTYPE_ENUMERATION into the Go type the
// unmarshaller expects for that CIM type. CIM types with a nil mapping are
// not convertible to a plain Go value.
var cimTypeToGoType = map[CIMTYPE_ENUMERATION]reflect.Type{
	CIM_SINT8:    reflect.TypeOf(int8(0)),
	CIM_UINT8:    reflect.TypeOf(uint8(0)),
	CIM_SINT16:   reflect.TypeOf(int16(0)),
	CIM_UINT16:   reflect.TypeOf(uint16(0)),
	CIM_SINT32:   reflect.TypeOf(int32(0)),
	CIM_UINT32:   reflect.TypeOf(uint32(0)),
	CIM_SINT64:   reflect.TypeOf(int64(0)),
	CIM_UINT64:   reflect.TypeOf(uint64(0)),
	CIM_REAL32:   reflect.TypeOf(float32(0)),
	CIM_REAL64:   reflect.TypeOf(float64(0)),
	CIM_BOOLEAN:  reflect.TypeOf(false),
	CIM_STRING:   reflect.TypeOf(""),
	CIM_DATETIME: reflect.TypeOf(""),
	CIM_CHAR16:   reflect.TypeOf(uint16(0)),
	CIM_ILLEGAL:  nil,
	CIM_EMPTY:    nil,
	// references and embedded objects need the service to resolve
	CIM_REFERENCE: nil,
	CIM_OBJECT:    nil,
}
