// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	log "github.com/hpe-storage/wmi-host-libs/logger"
)

// newAutomationVariant converts a Go value into the VARIANT shape WMI
// expects for IWbemClassObject::Put. The caller owns the returned variant
// and must Clear() it once handed to COM.
func newAutomationVariant(value interface{}) (ole.VARIANT, error) {
	switch cast := value.(type) {
	case bool:
		if cast {
			return ole.NewVariant(ole.VT_BOOL, 0xffff), nil
		}
		return ole.NewVariant(ole.VT_BOOL, 0), nil
	case int8:
		return ole.NewVariant(ole.VT_I1, int64(cast)), nil
	case int16:
		return ole.NewVariant(ole.VT_I2, int64(cast)), nil
	case int32:
		return ole.NewVariant(ole.VT_I4, int64(cast)), nil
	case int64:
		return ole.NewVariant(ole.VT_I8, cast), nil
	case int:
		return ole.NewVariant(ole.VT_I4, int64(cast)), nil
	case uint8:
		return ole.NewVariant(ole.VT_UI1, int64(cast)), nil
	case uint16:
		return ole.NewVariant(ole.VT_UI2, int64(cast)), nil
	case uint32:
		return ole.NewVariant(ole.VT_UI4, int64(cast)), nil
	case uint64:
		return ole.NewVariant(ole.VT_UI8, int64(cast)), nil
	case uint:
		return ole.NewVariant(ole.VT_UI4, int64(cast)), nil
	case float32:
		return ole.NewVariant(ole.VT_R4, int64(math.Float32bits(cast))), nil
	case float64:
		return ole.NewVariant(ole.VT_R8, int64(math.Float64bits(cast))), nil
	case string:
		return ole.NewVariant(ole.VT_BSTR, int64(uintptr(unsafe.Pointer(ole.SysAllocStringLen(cast))))), nil
	case []string:
		return newStringArrayVariant(cast)
	case nil:
		return ole.NewVariant(ole.VT_NULL, 0), nil
	case ole.VARIANT:
		return cast, nil
	case *ole.VARIANT:
		return *cast, nil
	default:
		return ole.VARIANT{}, fmt.Errorf("unsupported automation conversion from type %T", value)
	}
}

// variantToValue performs the stock conversion of a VARIANT into the Go
// type matching its internal automation type. Null and empty variants
// convert to nil.
func variantToValue(variant *ole.VARIANT) interface{} {
	switch variant.VT {
	case ole.VT_NULL, ole.VT_EMPTY:
		return nil
	}
	if variant.VT&ole.VT_ARRAY != 0 {
		if sac := variant.ToArray(); sac != nil {
			return sac.ToValueArray()
		}
		return nil
	}
	return variant.Value()
}

// variantToGoObject takes an enumerated WMI VARIANT and converts it into the
// Go object type specified by the field parameter. Embedded objects
// (VT_UNKNOWN) are not handled here; the query layer resolves those against
// the owning service before conversion.
func variantToGoObject(property string, vtProp *ole.VARIANT, cimType CIMTYPE_ENUMERATION, field fieldInfo) (v interface{}, err error) {
	switch vtProp.VT {
	case ole.VT_NULL, ole.VT_EMPTY:
		// nullable property with no value on this host
		v = nil

	case ole.VT_BSTR, ole.VT_BOOL, ole.VT_UI1, ole.VT_UI2, ole.VT_UI4, ole.VT_UI8, ole.VT_I1, ole.VT_I2, ole.VT_I4, ole.VT_I8:
		cimGoType, ok := cimTypeToGoType[cimType]
		if !ok || (cimGoType == nil) {
			log.Errorf("Unsupported CIM type conversion, property=%v, cimType=%v", property, cimType)
			return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
		}
		if vtProp.VT == ole.VT_BSTR {
			v, err = stringToObject(vtProp.ToString(), cimGoType.Kind())
		} else {
			v, err = numberToObject(vtProp.Val, cimGoType.Kind())
		}

	case ole.VT_ARRAY | ole.VT_BSTR:
		sac := vtProp.ToArray()
		if sac == nil {
			log.Errorf("Invalid variant string array, property=%v, VT=%v", property, vtProp.VT)
			return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
		}
		v = sac.ToStringArray()

	case ole.VT_ARRAY | ole.VT_UI1, ole.VT_ARRAY | ole.VT_UI2, ole.VT_ARRAY | ole.VT_UI4, ole.VT_ARRAY | ole.VT_UI8,
		ole.VT_ARRAY | ole.VT_I1, ole.VT_ARRAY | ole.VT_I2, ole.VT_ARRAY | ole.VT_I4, ole.VT_ARRAY | ole.VT_I8:
		v, err = variantArrayToGoSlice(property, vtProp, cimType, field)

	default:
		log.Errorf("Unsupported variant/CIM type, property=%v, VT=%v, cimType=%v", property, vtProp.VT, cimType)
		return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	return v, err
}

// variantArrayToGoSlice converts a numeric SAFEARRAY variant into the slice
// or array type declared by the destination field.
func variantArrayToGoSlice(property string, vtProp *ole.VARIANT, cimType CIMTYPE_ENUMERATION, field fieldInfo) (interface{}, error) {
	if (cimType&CIM_FLAG_ARRAY) == 0 || ((field.fieldKind != reflect.Slice) && (field.fieldKind != reflect.Array)) {
		log.Errorf("Invalid array details, property=%v, cimType=%v, fieldKind=%v", property, cimType, field.fieldKind)
		return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	cimGoType, ok := cimTypeToGoType[cimType&^CIM_FLAG_ARRAY]
	if !ok || (cimGoType == nil) {
		log.Errorf("Unsupported CIM type array conversion, property=%v, cimType=%v", property, cimType)
		return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	goKind := field.fieldType.Elem().Kind()
	if goKind != cimGoType.Kind() {
		log.Errorf("Mismatched array types, property=%v, goKind=%v, cimGoType=%v", property, goKind, cimGoType)
		return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	valueArray := vtProp.ToArray().ToValueArray()
	valueSlice := reflect.MakeSlice(reflect.SliceOf(cimGoType), 0, len(valueArray))
	for _, element := range valueArray {
		result, err := stringToObject(fmt.Sprintf("%v", element), cimGoType.Kind())
		if err != nil {
			return nil, err
		}
		valueSlice = reflect.Append(valueSlice, reflect.ValueOf(result))
	}

	if field.fieldKind == reflect.Slice {
		return valueSlice.Interface(), nil
	}

	// Fixed size destination; copy what fits and log any size mismatch
	valueArrayElem := reflect.New(field.fieldType).Elem()
	if valueArrayElem.Len() != valueSlice.Len() {
		log.Errorf("WMI array length mismatch, property=%v, srcLen=%v, dstLen=%v", property, valueSlice.Len(), valueArrayElem.Len())
	}
	reflect.Copy(valueArrayElem, valueSlice)
	return valueArrayElem.Interface(), nil
}

// stringToObject takes the given string, of the given kind, and converts it
// into an interface which is then returned to the caller. An error is
// returned if an unsupported string and/or kind was passed in.
func stringToObject(valueText string, valueKind reflect.Kind) (v interface{}, err error) {
	var intValue int64
	var uintValue uint64
	var floatValue float64

	switch valueKind {

	// Already a string, no conversion required
	case reflect.String:
		v, err = valueText, nil

	case reflect.Bool:
		v, err = strconv.ParseBool(valueText)

	case reflect.Int:
		intValue, err = strconv.ParseInt(valueText, 0, 64)
		v = int(intValue)
	case reflect.Int8:
		intValue, err = strconv.ParseInt(valueText, 0, 8)
		v = int8(intValue)
	case reflect.Int16:
		intValue, err = strconv.ParseInt(valueText, 0, 16)
		v = int16(intValue)
	case reflect.Int32:
		intValue, err = strconv.ParseInt(valueText, 0, 32)
		v = int32(intValue)
	case reflect.Int64:
		intValue, err = strconv.ParseInt(valueText, 0, 64)
		v = int64(intValue)

	case reflect.Uint:
		uintValue, err = strconv.ParseUint(valueText, 0, 64)
		v = uint(uintValue)
	case reflect.Uint8:
		uintValue, err = strconv.ParseUint(valueText, 0, 8)
		v = uint8(uintValue)
	case reflect.Uint16:
		uintValue, err = strconv.ParseUint(valueText, 0, 16)
		v = uint16(uintValue)
	case reflect.Uint32:
		uintValue, err = strconv.ParseUint(valueText, 0, 32)
		v = uint32(uintValue)
	case reflect.Uint64:
		uintValue, err = strconv.ParseUint(valueText, 0, 64)
		v = uint64(uintValue)

	case reflect.Float32:
		floatValue, err = strconv.ParseFloat(valueText, 32)
		v = float32(floatValue)
	case reflect.Float64:
		floatValue, err = strconv.ParseFloat(valueText, 64)
		v = float64(floatValue)

	default:
		err = NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	if err != nil {
		log.Errorf("Unsupported stringToObject input values, valueText=%v, valueKind=%v", valueText, valueKind)
	}

	return v, err
}

// numberToObject takes the given number, of the given kind, and converts it
// into an interface which is then returned to the caller. An "int64" is used
// as input because that is the VARIANT.Val type.
func numberToObject(valueNumber int64, valueKind reflect.Kind) (v interface{}, err error) {
	switch valueKind {

	case reflect.Bool:
		v = (valueNumber != 0)

	case reflect.Int8:
		v = int8(valueNumber)
	case reflect.Int16:
		v = int16(valueNumber)
	case reflect.Int32:
		v = int32(valueNumber)
	case reflect.Int64:
		v = valueNumber

	case reflect.Uint8:
		v = uint8(valueNumber)
	case reflect.Uint16:
		v = uint16(valueNumber)
	case reflect.Uint32:
		v = uint32(valueNumber)
	case reflect.Uint64:
		v = uint64(valueNumber)

	default:
		err = NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	if err != nil {
		log.Errorf("Unsupported numberToObject input values, valueNumber=%v, valueKind=%v", valueNumber, valueKind)
	}

	return v, err
}
