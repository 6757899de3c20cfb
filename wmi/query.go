// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"reflect"
	"runtime"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	log "github.com/hpe-storage/wmi-host-libs/logger"
)

// ExecQuery executes the given WQL query against the given namespace and
// unmarshals the result set into dst. When the query returns a single
// object, pass a pointer to a struct pointer. When it returns one or more
// objects, pass a pointer to a slice of struct pointers. See the package
// documentation for destination struct details.
func ExecQuery(wqlQuery string, namespace string, dst interface{}) (err error) {
	log.Tracef(">>>>> ExecQuery, wqlQuery=%v, namespace=%v", wqlQuery, namespace)
	defer log.Trace("<<<<< ExecQuery")

	// Only support one package-level WMI query at a time
	lock.Lock()
	defer lock.Unlock()

	// LockOSThread wires the calling goroutine to its current operating
	// system thread. A goroutine should call LockOSThread before calling OS
	// services that depend on per-thread state.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	service, err := NewLocalService(namespace)
	if err != nil {
		return err
	}
	defer service.Close()

	return service.Query(wqlQuery, dst)
}

// Query executes a WQL query on this service and unmarshals the result set
// into dst. Destination semantics match the package-level ExecQuery.
func (s *Service) Query(wqlQuery string, dst interface{}) (err error) {
	log.Tracef(">>>>> Query, wqlQuery=%v", wqlQuery)
	defer log.Trace("<<<<< Query")

	// Get the destination object path and type
	dstPath, dstType := getInterfaceType(dst)

	// There are only two types of destination objects this routine supports.
	//
	// dstPath		ptr.ptr.struct
	// Description	We were passed in a pointer to a pointer to a struct
	// Example		var operatingSystem *Win32_OperatingSystem
	//				err := service.Query("SELECT * FROM Win32_OperatingSystem", &operatingSystem)
	//
	// dstPath		ptr.slice.ptr.struct
	// Description	We were passed in a pointer to an array of pointers to structs
	// Example		var volumes []*Win32_Volume
	//				err := service.Query("SELECT * FROM Win32_Volume", &volumes)
	//
	// For any other destination object, we log an error and fail the request.
	var isSlicePtr bool
	switch dstPath {
	case "ptr.ptr.struct":
		isSlicePtr = false
	case "ptr.slice.ptr.struct":
		isSlicePtr = true
	default:
		log.Errorf("Unsupported destination object, dstType=%v, dstPath=%v", dstType.Name(), dstPath)
		return NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	log.Tracef("Destination object, dstType=%v, dstPath=%v, isSlicePtr=%v", dstType.Name(), dstPath, isSlicePtr)

	enum, err := s.ExecQuery(wqlQuery)
	if err != nil {
		return err
	}
	defer enum.Close()

	// Declare our return object as reflect.Value. If we're returning an
	// array of pointers to structs (i.e. isSlicePtr==true), then we set
	// returnObject to be a slice of structs.
	var returnObject reflect.Value
	if isSlicePtr {
		returnObject = reflect.MakeSlice(reflect.TypeOf(dst).Elem(), 0, 0)
	}

	for itemCount := 0; ; itemCount++ {
		instance, err := enum.Next()
		if err != nil {
			// If no objects enumerated, and the WMI query is not supported
			// on this host, log and fail with ErrNotSupported
			if wmiErr, ok := err.(*WmiError); ok && itemCount == 0 {
				switch wmiErr.Code() {
				case WBEM_E_NOT_SUPPORTED, WBEM_E_INVALID_CLASS:
					log.Tracef("WMI query not supported, err=%v, wqlQuery=%v", err, wqlQuery)
					return ErrNotSupported
				}
			}
			log.Errorf("Failed IEnumWbemClassObject::Next method, itemCount=%v, err=%v", itemCount, err)
			return err
		}
		if instance == nil {
			break
		}

		log.Tracef("Enumerating WMI class object %v", itemCount)

		// Allocate a new Go object for the WMI class and unmarshal the WMI
		// class into the Go object
		dstObject := reflect.New(dstType)
		err = instance.GetAll(dstObject.Interface())
		instance.Close()
		if err != nil {
			log.Errorf("Unable to unmarshal WMI class into Go object, err=%v", err)
			return err
		}

		if !isSlicePtr {
			// If the passed in destination object is only for a single WMI
			// class, but we enumerated multiple WMI classes, fail the request.
			if itemCount != 0 {
				log.Error("Multiple WMI classes enumerated when destination object can only handle a single object")
				return NewWmiError(WBEM_E_INVALID_PARAMETER)
			}
			returnObject = dstObject
		} else {
			returnObject = reflect.Append(returnObject, dstObject)
		}
	}

	// Fail request if return object was not enumerated
	if returnObject == reflect.ValueOf(nil) {
		log.Errorf("Unexpected nil return object, failing request")
		return ErrNoResults
	}

	// Return our enumerated WMI class, unmarshalled into a Go object
	dv := reflect.ValueOf(dst).Elem()
	dv.Set(returnObject)
	return nil
}

// GetAll unmarshals this WMI instance into the Go struct pointed to by
// target, guided by the struct's `wmi` field tags.
func (i *Instance) GetAll(target interface{}) (err error) {
	// Traverse the Go object to build up a key/value map of its fields
	fieldMap, err := structFieldMap(target)
	if err != nil {
		log.Errorf("Unexpected failure enumerating field map, err=%v", err)
		return err
	}

	className, err := i.Class()
	if err != nil {
		log.Errorf("Unable to query WMI class name, err=%v", err)
		return err
	}
	log.Tracef("Enumerated WMI class name, __CLASS=%v", className)

	propertyNames, err := i.PropertyNames()
	if err != nil {
		log.Errorf("Unable to query WMI class property names, err=%v", err)
		return err
	}

	// We're passed in a pointer to the go object we need to fill out. Get
	// its reflect.Value so that we can fill in the struct fields.
	goObjectValue := reflect.ValueOf(target).Elem()

	// At this point we know each of the WMI class property names and each
	// of the Go struct field names. Check each Go field to see if a WMI
	// property was found. If not, fill in the field's default value (if
	// provided) before we enumerate each WMI class property.
	for k, v := range fieldMap {
		match := false
		for _, propertyName := range propertyNames {
			if propertyName == k {
				match = true
				break
			}
		}
		if !match {
			if v.nilValue != nil {
				f := goObjectValue.Field(v.index)
				f.Set(reflect.ValueOf(v.nilValue))
			}
			log.Tracef(`Field "%v" defined in Go object but not supported by WMI on this host, nilValue=%v`, k, v.nilValue)
		}
	}

	// Enumerate each class property
	for _, property := range propertyNames {

		// Knowing the WMI class property, get the Go field details
		field, ok := fieldMap[property]
		if !ok {
			// If there is no Go field definition, for the enumerated WMI
			// property, log as informational so that the property can be
			// added to the Go definition.
			log.Tracef(`Property "%v" returned by WMI but not defined in Go object`, property)
			continue
		}

		vtProp, cimType, _, err := i.GetAsVariant(property)
		if err != nil {
			log.Errorf("Unable to query WMI class property value, property=%v, err=%v", property, err)
			return err
		}

		// Convert the WMI variant into a Go object. Embedded WMI objects
		// recurse through instanceVariantToGoObject; everything else goes
		// through the stock variant conversion.
		var propertyValue interface{}
		switch vtProp.VT {
		case ole.VT_UNKNOWN, ole.VT_ARRAY | ole.VT_UNKNOWN:
			propertyValue, err = i.instanceVariantToGoObject(property, vtProp, field)
		default:
			propertyValue, err = variantToGoObject(property, vtProp, cimType, field)
		}
		clearVariant(vtProp)
		if err != nil {
			log.Errorf("Failed unmarshalling WMI variant into Go object, property=%v, cimType=%v, err=%v", property, cimType, err)
			return err
		}

		// If a nil value was returned, and a default value was specified in
		// the WMI tags, use the tag property for the field's value.
		if (propertyValue == nil) && (field.nilValue != nil) {
			propertyValue = field.nilValue
		}

		// Set the Go field's value
		if propertyValue != nil {
			f := goObjectValue.Field(field.index)
			kindWMI := reflect.TypeOf(propertyValue).Kind()
			if kindWMI != field.fieldKind {
				// The Go object must not have been defined properly
				log.Errorf("WMI/Go kind mismatch, property=%v, WMI=%v, Go=%v", property, kindWMI, field.fieldKind)
			} else {
				f.Set(reflect.ValueOf(propertyValue))
			}
		}
	}

	return nil
}

// instanceVariantToGoObject converts an embedded WMI object property, or an
// array of embedded objects, into the Go objects declared by the field.
func (i *Instance) instanceVariantToGoObject(property string, vtProp *ole.VARIANT, field fieldInfo) (interface{}, error) {
	switch vtProp.VT {
	case ole.VT_UNKNOWN:
		// We only support a destination struct pointer
		if field.fieldKind != reflect.Ptr {
			log.Errorf("Unsupported destination object, reflect.Ptr expected, property=%v, dstKind=%v", property, field.fieldKind)
			return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
		}

		embedded := newInstance((*ole.IUnknown)(unsafe.Pointer(uintptr(vtProp.Val))), i.service)
		// The variant owns the COM reference; the caller clears it

		goObject := reflect.New(field.fieldType.Elem())
		if err := embedded.GetAll(goObject.Interface()); err != nil {
			return nil, err
		}
		return goObject.Interface(), nil

	case ole.VT_ARRAY | ole.VT_UNKNOWN:
		// We only support a destination slice of struct pointers
		if field.fieldKind != reflect.Slice {
			log.Errorf("Unsupported destination object for array of WMI objects, property=%v, dstKind=%v", property, field.fieldKind)
			return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
		}

		valueSlice := reflect.MakeSlice(field.fieldType, 0, 0)
		for _, iUnknownObject := range toIUnknownArray(vtProp.ToArray()) {
			embedded := newInstance(iUnknownObject, i.service)
			goObject := reflect.New(field.fieldType.Elem().Elem())
			err := embedded.GetAll(goObject.Interface())
			embedded.Close()
			if err != nil {
				return nil, err
			}
			valueSlice = reflect.Append(valueSlice, goObject)
		}
		return valueSlice.Interface(), nil
	}

	log.Errorf("Unsupported embedded object variant, property=%v, VT=%v", property, vtProp.VT)
	return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
}
