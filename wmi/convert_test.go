// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"reflect"
	"testing"

	ole "github.com/go-ole/go-ole"
)

func TestStringToObject(t *testing.T) {
	type args struct {
		valueText string
		valueKind reflect.Kind
	}
	tests := []struct {
		name    string
		args    args
		want    interface{}
		wantErr bool
	}{
		{"test-string", args{"hello", reflect.String}, "hello", false},
		{"test-bool-true", args{"true", reflect.Bool}, true, false},
		{"test-bool-false", args{"false", reflect.Bool}, false, false},
		{"test-int32", args{"-42", reflect.Int32}, int32(-42), false},
		{"test-int64", args{"9007199254740993", reflect.Int64}, int64(9007199254740993), false},
		{"test-uint32-hex", args{"0xFFFFFFFF", reflect.Uint32}, uint32(0xFFFFFFFF), false},
		{"test-uint64", args{"18446744073709551615", reflect.Uint64}, uint64(18446744073709551615), false},
		{"test-float32", args{"1.5", reflect.Float32}, float32(1.5), false},
		{"test-overflow", args{"256", reflect.Uint8}, nil, true},
		{"test-not-a-number", args{"abc", reflect.Int32}, nil, true},
		{"test-unsupported-kind", args{"abc", reflect.Map}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stringToObject(tt.args.valueText, tt.args.valueKind)
			if (err != nil) != tt.wantErr {
				t.Errorf("stringToObject() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("stringToObject() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNumberToObject(t *testing.T) {
	type args struct {
		valueNumber int64
		valueKind   reflect.Kind
	}
	tests := []struct {
		name    string
		args    args
		want    interface{}
		wantErr bool
	}{
		{"test-bool-true", args{0xFFFF, reflect.Bool}, true, false},
		{"test-bool-false", args{0, reflect.Bool}, false, false},
		{"test-int8", args{-5, reflect.Int8}, int8(-5), false},
		{"test-uint16", args{65535, reflect.Uint16}, uint16(65535), false},
		{"test-uint32", args{4294967295, reflect.Uint32}, uint32(4294967295), false},
		{"test-int64", args{-1, reflect.Int64}, int64(-1), false},
		{"test-unsupported-kind", args{1, reflect.String}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numberToObject(tt.args.valueNumber, tt.args.valueKind)
			if (err != nil) != tt.wantErr {
				t.Errorf("numberToObject() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("numberToObject() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestVariantToGoObjectScalars(t *testing.T) {
	uint32Field := fieldInfo{fieldType: reflect.TypeOf(uint32(0)), fieldKind: reflect.Uint32}
	boolField := fieldInfo{fieldType: reflect.TypeOf(false), fieldKind: reflect.Bool}

	type args struct {
		vtProp  ole.VARIANT
		cimType CIMTYPE_ENUMERATION
		field   fieldInfo
	}
	tests := []struct {
		name    string
		args    args
		want    interface{}
		wantErr bool
	}{
		{"test-null", args{ole.VARIANT{VT: ole.VT_NULL}, CIM_UINT32, uint32Field}, nil, false},
		{"test-empty", args{ole.VARIANT{VT: ole.VT_EMPTY}, CIM_UINT32, uint32Field}, nil, false},
		{"test-uint32", args{ole.VARIANT{VT: ole.VT_I4, Val: 42}, CIM_UINT32, uint32Field}, uint32(42), false},
		{"test-bool", args{ole.VARIANT{VT: ole.VT_BOOL, Val: -1}, CIM_BOOLEAN, boolField}, true, false},
		{"test-bad-cimtype", args{ole.VARIANT{VT: ole.VT_I4, Val: 42}, CIM_OBJECT, uint32Field}, nil, true},
		{"test-unsupported-vt", args{ole.VARIANT{VT: ole.VT_DISPATCH}, CIM_OBJECT, uint32Field}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := variantToGoObject("TestProperty", &tt.args.vtProp, tt.args.cimType, tt.args.field)
			if (err != nil) != tt.wantErr {
				t.Errorf("variantToGoObject() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("variantToGoObject() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNewAutomationVariantScalars(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		wantVT ole.VT
	}{
		{"test-bool", true, ole.VT_BOOL},
		{"test-int32", int32(5), ole.VT_I4},
		{"test-int", 5, ole.VT_I4},
		{"test-uint64", uint64(5), ole.VT_UI8},
		{"test-float64", 1.5, ole.VT_R8},
		{"test-nil", nil, ole.VT_NULL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newAutomationVariant(tt.value)
			if err != nil {
				t.Fatalf("newAutomationVariant() unexpected error, err=%v", err)
			}
			if got.VT != tt.wantVT {
				t.Errorf("newAutomationVariant() VT = %v, want %v", got.VT, tt.wantVT)
			}
		})
	}
}

func TestNewAutomationVariantUnsupported(t *testing.T) {
	if _, err := newAutomationVariant(struct{}{}); err == nil {
		t.Error("newAutomationVariant() expected error on unsupported type")
	}
}
