// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"reflect"
	"testing"
)

func TestGetInterfaceType(t *testing.T) {
	type testStruct struct {
		Name string
	}
	var single *testStruct
	var slice []*testStruct

	tests := []struct {
		name     string
		dst      interface{}
		wantPath string
		wantType string
	}{
		{"test-1", &single, "ptr.ptr.struct", "testStruct"},
		{"test-2", &slice, "ptr.slice.ptr.struct", "testStruct"},
		{"test-3", testStruct{}, "struct", "testStruct"},
		{"test-4", &testStruct{}, "ptr.struct", "testStruct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPath, gotType := getInterfaceType(tt.dst)
			if gotPath != tt.wantPath {
				t.Errorf("getInterfaceType() path = %v, want %v", gotPath, tt.wantPath)
			}
			if gotType.Name() != tt.wantType {
				t.Errorf("getInterfaceType() type = %v, want %v", gotType.Name(), tt.wantType)
			}
		})
	}
}

func TestStructFieldMap(t *testing.T) {
	type testStruct struct {
		Access                 uint16
		BlockSizeInBytes       uint64 `wmi:"BlockSize"`
		MyPrivateData          uint64 `wmi:"-"`
		ConfigManagerErrorCode uint32 `wmi:",nil=0xFFFFFFFF"`
	}

	fieldMap, err := structFieldMap(&testStruct{})
	if err != nil {
		t.Fatalf("structFieldMap() unexpected error, err=%v", err)
	}

	// Ignored field must not be mapped
	if _, ok := fieldMap["MyPrivateData"]; ok {
		t.Error(`structFieldMap() mapped a field tagged "-"`)
	}

	// Renamed field maps under its WMI property name
	if field, ok := fieldMap["BlockSize"]; !ok {
		t.Error("structFieldMap() missing renamed field BlockSize")
	} else if field.fieldKind != reflect.Uint64 {
		t.Errorf("structFieldMap() BlockSize kind = %v, want %v", field.fieldKind, reflect.Uint64)
	}

	// Untagged field maps under the Go field name
	if field, ok := fieldMap["Access"]; !ok {
		t.Error("structFieldMap() missing field Access")
	} else if field.nilValue != nil {
		t.Errorf("structFieldMap() Access nilValue = %v, want nil", field.nilValue)
	}

	// nil= tag parses into the field's own type
	if field, ok := fieldMap["ConfigManagerErrorCode"]; !ok {
		t.Error("structFieldMap() missing field ConfigManagerErrorCode")
	} else if field.nilValue != uint32(0xFFFFFFFF) {
		t.Errorf("structFieldMap() nilValue = %v, want %v", field.nilValue, uint32(0xFFFFFFFF))
	}
}

func TestStructFieldMapInvalidInput(t *testing.T) {
	type testStruct struct {
		Name string
	}

	tests := []struct {
		name string
		dst  interface{}
	}{
		{"test-not-a-pointer", testStruct{}},
		{"test-slice", &[]*testStruct{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := structFieldMap(tt.dst); err == nil {
				t.Error("structFieldMap() expected error on invalid destination")
			}
		})
	}
}

func TestStructFieldMapInvalidTag(t *testing.T) {
	type testStruct struct {
		Value uint32 `wmi:",default=42"`
	}
	if _, err := structFieldMap(&testStruct{}); err == nil {
		t.Error("structFieldMap() expected error on unsupported tag setting")
	}
}
