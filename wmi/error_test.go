// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"strings"
	"testing"
)

func TestWmiErrorCode(t *testing.T) {
	err := NewWmiError(WBEM_E_INVALID_PARAMETER)
	if err.Code() != WBEM_E_INVALID_PARAMETER {
		t.Errorf("Code() = %08Xh, want %08Xh", err.Code(), uintptr(WBEM_E_INVALID_PARAMETER))
	}
	if !strings.Contains(err.Error(), "80041008") {
		t.Errorf("Error() = %v, expected the HRESULT to appear", err.Error())
	}
}

func TestSucceededFailed(t *testing.T) {
	tests := []struct {
		name     string
		hres     uintptr
		succeeds bool
	}{
		{"test-s-ok", S_OK, true},
		{"test-s-false", S_FALSE, true},
		{"test-no-more-data", WBEM_S_NO_MORE_DATA, true},
		{"test-e-failed", WBEM_E_FAILED, false},
		{"test-e-not-found", WBEM_E_NOT_FOUND, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SUCCEEDED(tt.hres); got != tt.succeeds {
				t.Errorf("SUCCEEDED(%08Xh) = %v, want %v", tt.hres, got, tt.succeeds)
			}
			if got := FAILED(tt.hres); got == tt.succeeds {
				t.Errorf("FAILED(%08Xh) = %v, want %v", tt.hres, got, !tt.succeeds)
			}
		})
	}
}
