// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"reflect"
	"strings"

	log "github.com/hpe-storage/wmi-host-libs/logger"
)

// fieldInfo stores details about each field in a destination Go struct
type fieldInfo struct {
	index     int          // Index into the Go structure
	fieldType reflect.Type // Field type
	fieldKind reflect.Kind // Field kind
	nilValue  interface{}  // "nil" tag attribute (nil value if not provided)
}

// getInterfaceType traverses the passed in interface and returns a string
// representing the type of object it is. For example, "ptr.ptr.struct"
// indicates that the dst interface is a pointer to a pointer to a struct.
// The dstType value returns the type of the end destination structure.
func getInterfaceType(dst interface{}) (dstPath string, dstType reflect.Type) {
	for dstType = reflect.TypeOf(dst); dstType != nil; dstType, dstPath = dstType.Elem(), dstPath+"." {
		dstKind := dstType.Kind()
		dstPath += dstKind.String()
		if (dstKind != reflect.Ptr) && (dstKind != reflect.Slice) {
			break
		}
	}
	return dstPath, dstType
}

// structFieldMap takes a pointer to a struct, traverses the struct, and
// populates a map with details about each field. The map key is the WMI
// property name the field binds to.
//
// Supported `wmi` tags:
//
//	`wmi:"Name"`            bind the field to a differently named property
//	`wmi:"-"`               ignore the field
//	`wmi:",nil=<value>"`    value to assume when the property is null
func structFieldMap(ptrStruct interface{}) (mapStruct map[string]fieldInfo, err error) {
	dstPath, _ := getInterfaceType(ptrStruct)
	if dstPath != "ptr.struct" {
		log.Errorf("Invalid interface object, dstPath=%v", dstPath)
		return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
	}

	mapStruct = make(map[string]fieldInfo)

	t := reflect.TypeOf(ptrStruct).Elem()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Name

		fieldData := fieldInfo{
			index:     i,
			fieldType: f.Type,
			fieldKind: f.Type.Kind(),
		}

		wmiTag := f.Tag.Get("wmi")
		if wmiTag != "" {
			wmiTags := strings.Split(wmiTag, ",")

			if len(wmiTags) >= 1 {
				if wmiTags[0] == "-" {
					// Ignore this field
					continue
				} else if wmiTags[0] != "" {
					// Go field name doesn't align with the WMI property name
					name = wmiTags[0]
				}
			}

			if len(wmiTags) >= 2 {
				overrides := strings.Split(wmiTags[1], "=")
				switch overrides[0] {
				case "nil":
					if len(overrides) > 1 {
						fieldData.nilValue, err = stringToObject(overrides[1], f.Type.Kind())
						if err != nil {
							return nil, err
						}
					}
				default:
					log.Errorf("Invalid WMI value setting, wmiTag=%v", wmiTag)
					return nil, NewWmiError(WBEM_E_INVALID_PARAMETER)
				}
			}
		}

		mapStruct[name] = fieldData
	}

	return mapStruct, nil
}
