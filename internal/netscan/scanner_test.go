package netscan

import (
	"testing"
)

func TestNewScanner_Defaults(t *testing.T) {
	scanner := NewScanner()
	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

func TestDevice_String(t *testing.T) {
	d := Device{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff"}
	want := "192.168.1.1 (aa:bb:cc:dd:ee:ff)"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
