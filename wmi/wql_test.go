// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"testing"
)

func TestQuoteWQL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"test-1", "C:", "C:"},
		{"test-2", `C:\Windows`, `C:\\Windows`},
		{"test-3", "O'Brien", `O\'Brien`},
		{"test-4", `say "hi"`, `say \"hi\"`},
		{"test-5", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteWQL(tt.value); got != tt.want {
				t.Errorf("QuoteWQL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassNameQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   string
	}{
		{"test-1", "", "SELECT * FROM meta_class"},
		{"test-2", "Win32_%", "SELECT * FROM meta_class WHERE __CLASS LIKE 'Win32_%'"},
		{"test-3", "MSFT_Disk", "SELECT * FROM meta_class WHERE __CLASS LIKE 'MSFT_Disk'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassNameQuery(tt.filter); got != tt.want {
				t.Errorf("ClassNameQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInstanceQuery(t *testing.T) {
	type args struct {
		className     string
		whereProperty string
		whereValue    string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"test-1", args{"Win32_LogicalDisk", "", ""}, "SELECT * FROM Win32_LogicalDisk"},
		{"test-2", args{"Win32_LogicalDisk", "DeviceID", "C:"}, "SELECT * FROM Win32_LogicalDisk WHERE DeviceID = 'C:'"},
		{"test-3", args{"Win32_Volume", "Label", "Eve's"}, `SELECT * FROM Win32_Volume WHERE Label = 'Eve\'s'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstanceQuery(tt.args.className, tt.args.whereProperty, tt.args.whereValue); got != tt.want {
				t.Errorf("InstanceQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}
