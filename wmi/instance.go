// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"fmt"
	"strconv"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	log "github.com/hpe-storage/wmi-host-libs/logger"
)

// IWbemClassObjectVtbl is the IWbemClassObject COM virtual table
type IWbemClassObjectVtbl struct {
	QueryInterface          uintptr
	AddRef                  uintptr
	Release                 uintptr
	GetQualifierSet         uintptr
	Get                     uintptr
	Put                     uintptr
	Delete                  uintptr
	GetNames                uintptr
	BeginEnumeration        uintptr
	Next                    uintptr
	EndEnumeration          uintptr
	GetPropertyQualifierSet uintptr
	Clone                   uintptr
	GetObjectText           uintptr
	SpawnDerivedClass       uintptr
	SpawnInstance           uintptr
	CompareTo               uintptr
	GetPropertyOrigin       uintptr
	InheritsFrom            uintptr
	GetMethod               uintptr
	PutMethod               uintptr
	DeleteMethod            uintptr
	BeginMethodEnumeration  uintptr
	NextMethod              uintptr
	EndMethodEnumeration    uintptr
	GetMethodQualifierSet   uintptr
	GetMethodOrigin         uintptr
}

// Instance wraps an IWbemClassObject together with the service it was
// obtained from.
type Instance struct {
	object  *ole.IUnknown
	vTable  *IWbemClassObjectVtbl
	service *Service
}

func newInstance(object *ole.IUnknown, service *Service) *Instance {
	return &Instance{
		object:  object,
		vTable:  (*IWbemClassObjectVtbl)(unsafe.Pointer(object.RawVTable)),
		service: service,
	}
}

// Close cleans up all memory associated with this instance
func (i *Instance) Close() {
	if i != nil && i.object != nil {
		i.object.Release()
		i.object = nil
	}
}

// Valid reports whether this instance still wraps a live COM object
func (i *Instance) Valid() bool {
	return i != nil && i.object != nil
}

// Class gets the WMI class name of this object instance
func (i *Instance) Class() (string, error) {
	return i.GetAsString(wmiClassKey)
}

// RelPath gets the relative WMI object path of this instance, the form
// IWbemServices::ExecMethod expects.
func (i *Instance) RelPath() (string, error) {
	return i.GetAsString(wmiRelPathKey)
}

// Path gets the full WMI object path of this instance
func (i *Instance) Path() (string, error) {
	return i.GetAsString(wmiPathKey)
}

// PropertyNames returns the non-system property names of this instance, in
// the order the provider returns them.
func (i *Instance) PropertyNames() ([]string, error) {
	var classPropertyNames *ole.SafeArray
	res, _, _ := syscall.SyscallN(
		i.vTable.GetNames,                 // IWbemClassObject::GetNames(
		uintptr(unsafe.Pointer(i.object)), // IWbemClassObject ptr
		uintptr(0),                        // [in]  LPCWSTR   wszQualifierName,
		uintptr(WBEM_FLAG_ALWAYS|WBEM_FLAG_NONSYSTEM_ONLY), // [in] long lFlags,
		uintptr(0), // [in]  VARIANT   *pQualifierVal,
		uintptr(unsafe.Pointer(&classPropertyNames))) // [out] SAFEARRAY **pNames)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	// The conversion wrapper owns the SAFEARRAY and destroys it on Release
	safePropertyNames := ole.SafeArrayConversion{Array: classPropertyNames}
	defer safePropertyNames.Release()

	return safePropertyNames.ToStringArray(), nil
}

// GetAsVariant obtains a property value, if it exists. Callers are
// responsible for clearing the returned VARIANT.
func (i *Instance) GetAsVariant(name string) (*ole.VARIANT, CIMTYPE_ENUMERATION, WBEM_FLAVOR_TYPE, error) {
	wszName, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return nil, 0, 0, err
	}

	var variant ole.VARIANT
	var cimType CIMTYPE_ENUMERATION
	var flavor WBEM_FLAVOR_TYPE

	res, _, _ := syscall.SyscallN(
		i.vTable.Get,                      // IWbemClassObject::Get(
		uintptr(unsafe.Pointer(i.object)), // IWbemClassObject ptr
		uintptr(unsafe.Pointer(wszName)),  // [in]            LPCWSTR wszName,
		uintptr(0),                        // [in]            long    lFlags,
		uintptr(unsafe.Pointer(&variant)), // [out]           VARIANT *pVal,
		uintptr(unsafe.Pointer(&cimType)), // [out, optional] CIMTYPE *pType,
		uintptr(unsafe.Pointer(&flavor)))  // [out, optional] long    *plFlavor)
	if FAILED(res) {
		return nil, 0, 0, NewWmiError(res)
	}

	return &variant, cimType, flavor, nil
}

// GetAsAny gets a property value converted to the Go type that matches the
// internal automation type WMI handed back. For predictable static typing
// use GetAsString(), GetAsInt(), or GetAll() instead.
func (i *Instance) GetAsAny(name string) (interface{}, CIMTYPE_ENUMERATION, WBEM_FLAVOR_TYPE, error) {
	variant, cimType, flavor, err := i.GetAsVariant(name)
	if err != nil {
		return nil, cimType, flavor, err
	}
	defer clearVariant(variant)

	return variantToValue(variant), cimType, flavor, nil
}

// GetAsString gets a property value in its text form. Null values read as
// "NULL" and booleans as "true"/"false"; everything else is coerced to its
// natural text representation.
func (i *Instance) GetAsString(name string) (string, error) {
	variant, _, _, err := i.GetAsVariant(name)
	if err != nil {
		return "", err
	}
	defer clearVariant(variant)

	switch variant.VT {
	case ole.VT_NULL, ole.VT_EMPTY:
		return "NULL", nil
	case ole.VT_BOOL:
		if variant.Val != 0 {
			return "true", nil
		}
		return "false", nil
	case ole.VT_BSTR:
		return variant.ToString(), nil
	default:
		return fmt.Sprintf("%v", variantToValue(variant)), nil
	}
}

// GetAsInt gets a property value coerced to an integer, if conversion is
// possible. Otherwise an error is returned.
func (i *Instance) GetAsInt(name string) (int, error) {
	val, _, _, err := i.GetAsAny(name)
	if err != nil {
		return 0, err
	}

	switch ret := val.(type) {
	case bool:
		if ret {
			return 1, nil
		}
		return 0, nil
	case int:
		return ret, nil
	case int8:
		return int(ret), nil
	case int16:
		return int(ret), nil
	case int32:
		return int(ret), nil
	case int64:
		return int(ret), nil
	case uint:
		return int(ret), nil
	case uint8:
		return int(ret), nil
	case uint16:
		return int(ret), nil
	case uint32:
		return int(ret), nil
	case uint64:
		return int(ret), nil
	case string:
		parsed, err := strconv.ParseInt(ret, 0, 64)
		return int(parsed), err
	default:
		return 0, fmt.Errorf("type conversion from %T on property %s not supported", val, name)
	}
}

// Put sets the named property to the passed Go value, converting to the
// matching automation type.
func (i *Instance) Put(name string, value interface{}) error {
	variant, err := newAutomationVariant(value)
	if err != nil {
		return err
	}

	wszName, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return err
	}

	res, _, _ := syscall.SyscallN(
		i.vTable.Put,                      // IWbemClassObject::Put(
		uintptr(unsafe.Pointer(i.object)), // IWbemClassObject ptr
		uintptr(unsafe.Pointer(wszName)),  // [in] LPCWSTR wszName,
		uintptr(0),                        // [in] long    lFlags,
		uintptr(unsafe.Pointer(&variant)), // [in] VARIANT *pVal,
		uintptr(0))                        // [in] CIMTYPE Type)

	_ = variant.Clear()

	if FAILED(res) {
		return NewWmiError(res)
	}
	return nil
}

// SpawnInstance creates a new zeroed WMI object instance from this class
// definition. The new instance will not carry the class default values.
func (i *Instance) SpawnInstance() (*Instance, error) {
	var newUnknown *ole.IUnknown
	res, _, _ := syscall.SyscallN(
		i.vTable.SpawnInstance,               // IWbemClassObject::SpawnInstance(
		uintptr(unsafe.Pointer(i.object)),    // IWbemClassObject ptr
		uintptr(0),                           // [in]  long             lFlags,
		uintptr(unsafe.Pointer(&newUnknown))) // [out] IWbemClassObject **ppNewInstance)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	return newInstance(newUnknown, i.service), nil
}

// Clone creates a new cloned copy of this WMI instance
func (i *Instance) Clone() (*Instance, error) {
	var cloned *ole.IUnknown
	res, _, _ := syscall.SyscallN(
		i.vTable.Clone,                    // IWbemClassObject::Clone(
		uintptr(unsafe.Pointer(i.object)), // IWbemClassObject ptr
		uintptr(unsafe.Pointer(&cloned)))  // [out] IWbemClassObject **ppCopy)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	return newInstance(cloned, i.service), nil
}

// BeginEnumeration begins iterating the property list of this instance
func (i *Instance) BeginEnumeration(flags WBEM_CONDITION_FLAG_TYPE) error {
	res, _, _ := syscall.SyscallN(
		i.vTable.BeginEnumeration,         // IWbemClassObject::BeginEnumeration(
		uintptr(unsafe.Pointer(i.object)), // IWbemClassObject ptr
		uintptr(flags))                    // [in] long lEnumFlags)
	if FAILED(res) {
		return NewWmiError(res)
	}
	return nil
}

// NextAsVariant retrieves the next property when iterating with an
// enumerator started by BeginEnumeration(). Callers are responsible for
// clearing the returned VARIANT.
func (i *Instance) NextAsVariant() (done bool, name string, value *ole.VARIANT, cimType CIMTYPE_ENUMERATION, flavor WBEM_FLAVOR_TYPE, err error) {
	var strName *uint16
	var variant ole.VARIANT

	res, _, _ := syscall.SyscallN(
		i.vTable.Next,                     // IWbemClassObject::Next(
		uintptr(unsafe.Pointer(i.object)), // IWbemClassObject ptr
		uintptr(0),                        // [in]            long    lFlags,
		uintptr(unsafe.Pointer(&strName)), // [out]           BSTR    *strName,
		uintptr(unsafe.Pointer(&variant)), // [out]           VARIANT *pVal,
		uintptr(unsafe.Pointer(&cimType)), // [out, optional] CIMTYPE *pType,
		uintptr(unsafe.Pointer(&flavor)))  // [out, optional] long    *plFlavor)
	if FAILED(res) {
		return false, "", nil, cimType, flavor, NewWmiError(res)
	}

	if res == WBEM_S_NO_MORE_DATA {
		return true, "", nil, cimType, flavor, nil
	}

	defer ole.SysFreeString((*int16)(unsafe.Pointer(strName)))
	return false, ole.BstrToString(strName), &variant, cimType, flavor, nil
}

// NextProperty retrieves the next property as a Go value when iterating
// with an enumerator started by BeginEnumeration().
func (i *Instance) NextProperty() (done bool, name string, value interface{}, err error) {
	var variant *ole.VARIANT
	done, name, variant, _, _, err = i.NextAsVariant()
	if err == nil && !done {
		defer clearVariant(variant)
		value = variantToValue(variant)
	}
	return done, name, value, err
}

// EndEnumeration completes iterating a property list on this instance
func (i *Instance) EndEnumeration() error {
	res, _, _ := syscall.SyscallN(
		i.vTable.EndEnumeration,           // IWbemClassObject::EndEnumeration(
		uintptr(unsafe.Pointer(i.object))) // IWbemClassObject ptr)
	if FAILED(res) {
		return NewWmiError(res)
	}
	return nil
}

// GetAllProperties gets all non-system properties of this instance. The
// returned map is keyed by property name and holds Go values matching the
// WMI internal types.
func (i *Instance) GetAllProperties() (map[string]interface{}, error) {
	if err := i.BeginEnumeration(WBEM_FLAG_NONSYSTEM_ONLY); err != nil {
		return nil, err
	}
	defer func() {
		if err := i.EndEnumeration(); err != nil {
			log.Errorf("Failed ending property enumeration, err=%v", err)
		}
	}()

	properties := make(map[string]interface{})
	for {
		done, name, value, err := i.NextProperty()
		if err != nil || done {
			return properties, err
		}
		properties[name] = value
	}
}

// GetMethodParameters returns a WMI class object representing the [in]
// parameters of a method, suitable for SpawnInstance + Put. This is an
// advanced method; most callers should use InvokeMethod() or BeginInvoke().
func (i *Instance) GetMethodParameters(method string) (*Instance, error) {
	wszName, err := syscall.UTF16PtrFromString(method)
	if err != nil {
		return nil, err
	}

	var inSignature *ole.IUnknown
	res, _, _ := syscall.SyscallN(
		i.vTable.GetMethod,                    // IWbemClassObject::GetMethod(
		uintptr(unsafe.Pointer(i.object)),     // IWbemClassObject ptr
		uintptr(unsafe.Pointer(wszName)),      // [in]  LPCWSTR          wszName,
		uintptr(0),                            // [in]  long             lFlags,
		uintptr(unsafe.Pointer(&inSignature)), // [out] IWbemClassObject **ppInSignature,
		uintptr(0))                            // [out] IWbemClassObject **ppOutSignature)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	if inSignature == nil {
		// Methods without input parameters have no in signature
		return nil, nil
	}
	return newInstance(inSignature, i.service), nil
}

// Methods enumerates the methods of this object's class, returning each
// method's name and its input and output parameter names.
func (i *Instance) Methods() ([]MethodDef, error) {
	log.Trace(">>>>> Methods")
	defer log.Trace("<<<<< Methods")

	// Method metadata only lives on the class definition object
	class, err := i.service.GetClassInstance(i)
	if err != nil {
		return nil, err
	}
	defer class.Close()

	return class.classMethods()
}

func (i *Instance) classMethods() ([]MethodDef, error) {
	res, _, _ := syscall.SyscallN(
		i.vTable.BeginMethodEnumeration,   // IWbemClassObject::BeginMethodEnumeration(
		uintptr(unsafe.Pointer(i.object)), // IWbemClassObject ptr
		uintptr(0))                        // [in] long lEnumFlags)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	var methods []MethodDef
	for {
		var strName *uint16
		var inSignature *ole.IUnknown
		var outSignature *ole.IUnknown

		res, _, _ = syscall.SyscallN(
			i.vTable.NextMethod,                    // IWbemClassObject::NextMethod(
			uintptr(unsafe.Pointer(i.object)),      // IWbemClassObject ptr
			uintptr(0),                             // [in]  long             lFlags,
			uintptr(unsafe.Pointer(&strName)),      // [out] BSTR             *pstrName,
			uintptr(unsafe.Pointer(&inSignature)),  // [out] IWbemClassObject **ppInSignature,
			uintptr(unsafe.Pointer(&outSignature))) // [out] IWbemClassObject **ppOutSignature)
		if FAILED(res) || res == WBEM_S_NO_MORE_DATA || strName == nil {
			break
		}

		def := MethodDef{Name: ole.BstrToString(strName)}
		ole.SysFreeString((*int16)(unsafe.Pointer(strName)))

		if inSignature != nil {
			signature := newInstance(inSignature, i.service)
			def.InParams, _ = signature.PropertyNames()
			signature.Close()
		}
		if outSignature != nil {
			signature := newInstance(outSignature, i.service)
			def.OutParams, _ = signature.PropertyNames()
			signature.Close()
		}

		methods = append(methods, def)
	}

	endRes, _, _ := syscall.SyscallN(
		i.vTable.EndMethodEnumeration,     // IWbemClassObject::EndMethodEnumeration(
		uintptr(unsafe.Pointer(i.object))) // IWbemClassObject ptr)
	if FAILED(endRes) {
		return methods, NewWmiError(endRes)
	}

	return methods, nil
}

func clearVariant(variant *ole.VARIANT) {
	if variant == nil {
		return
	}
	if err := variant.Clear(); err != nil {
		log.Errorf("Failed clearing variant, err=%v", err)
	}
}
