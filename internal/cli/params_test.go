// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package cli

import (
	"reflect"
	"testing"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		wantName  string
		wantValue string
		wantErr   bool
	}{
		{"test-1", "DeviceID=C:", "DeviceID", "C:", false},
		{"test-2", "CommandLine=notepad.exe foo=bar", "CommandLine", "notepad.exe foo=bar", false},
		{"test-3", "Empty=", "Empty", "", false},
		{"test-4", "NoEquals", "", "", true},
		{"test-5", "=Value", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotValue, err := parseAssignment(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseAssignment() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotName != tt.wantName || gotValue != tt.wantValue {
				t.Errorf("parseAssignment() = (%v, %v), want (%v, %v)", gotName, gotValue, tt.wantName, tt.wantValue)
			}
		})
	}
}

func TestParseValueLiteral(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    interface{}
	}{
		{"test-bool-true", "true", true},
		{"test-bool-false", "false", false},
		{"test-int32", "42", int32(42)},
		{"test-negative", "-7", int32(-7)},
		{"test-hex", "0xFF", int32(255)},
		{"test-int64", "4294967296", int64(4294967296)},
		{"test-uint64", "18446744073709551615", uint64(18446744073709551615)},
		{"test-float", "1.5", 1.5},
		{"test-string", "notepad.exe", "notepad.exe"},
		{"test-quoted-number", "'42'", "42"},
		{"test-quoted-bool", `"true"`, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseValueLiteral(tt.literal)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseValueLiteral() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestParseInputParams(t *testing.T) {
	inputs, err := parseInputParams([]string{"FixErrors=false", "ChkDskCount=3", "Drive=C:"})
	if err != nil {
		t.Fatalf("parseInputParams() unexpected error, err=%v", err)
	}
	want := map[string]interface{}{
		"FixErrors":   false,
		"ChkDskCount": int32(3),
		"Drive":       "C:",
	}
	if !reflect.DeepEqual(inputs, want) {
		t.Errorf("parseInputParams() = %v, want %v", inputs, want)
	}

	if _, err := parseInputParams([]string{"missing-equals"}); err == nil {
		t.Error("parseInputParams() expected error on malformed assignment")
	}
}
