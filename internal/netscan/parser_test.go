package netscan

import (
	"reflect"
	"testing"
)

func TestParseARPOutput_LinuxFormat(t *testing.T) {
	output := `? (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on eth0
? (192.168.1.2) at 11:22:33:44:55:66 [ether] on eth0`

	devices := ParseARPOutput(output)

	want := []Device{
		{IP: "192.168.1.1", MAC: "aa:bb:cc:dd:ee:ff"},
		{IP: "192.168.1.2", MAC: "11:22:33:44:55:66"},
	}
	if !reflect.DeepEqual(devices, want) {
		t.Errorf("ParseARPOutput() = %v, want %v", devices, want)
	}
}

func TestParseARPOutput_DashSeparatorNormalized(t *testing.T) {
	// Windows and some BSDs print dashes; output must use colons
	output := "? (192.168.1.3) at 77-88-99-aa-bb-cc on en0"

	devices := ParseARPOutput(output)

	if len(devices) != 1 {
		t.Fatalf("ParseARPOutput() returned %d devices, want 1", len(devices))
	}
	if devices[0].IP != "192.168.1.3" {
		t.Errorf("IP = %s, want 192.168.1.3", devices[0].IP)
	}
	if devices[0].MAC != "77:88:99:aa:bb:cc" {
		t.Errorf("MAC = %s, want 77:88:99:aa:bb:cc", devices[0].MAC)
	}
}

func TestParseARPOutput_WindowsFormat(t *testing.T) {
	output := `
Interface: 192.168.1.10 --- 0x4
  Internet Address      Physical Address      Type
  192.168.1.1           00-11-22-33-44-55     dynamic
  192.168.1.255         ff-ff-ff-ff-ff-ff     static
`

	devices := ParseARPOutput(output)

	// The interface header line has no MAC, so only the two entries match
	want := []Device{
		{IP: "192.168.1.1", MAC: "00:11:22:33:44:55"},
		{IP: "192.168.1.255", MAC: "ff:ff:ff:ff:ff:ff"},
	}
	if !reflect.DeepEqual(devices, want) {
		t.Errorf("ParseARPOutput() = %v, want %v", devices, want)
	}
}

func TestParseARPOutput_SkipsNonMatchingLines(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"empty input", ""},
		{"blank lines", "\n\n\n"},
		{"header only", "Address                  HWtype  HWaddress           Flags Mask            Iface"},
		{"incomplete entry", "? (192.168.1.9) at <incomplete> on eth0"},
		{"ip without mac", "192.168.1.5 is reachable"},
		{"mac without ip", "device at aa:bb:cc:dd:ee:ff"},
		{"short mac", "? (192.168.1.5) at aa:bb:cc:dd:ee on eth0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devices := ParseARPOutput(tt.output)
			if len(devices) != 0 {
				t.Errorf("ParseARPOutput(%q) = %v, want no devices", tt.output, devices)
			}
		})
	}
}

func TestParseARPOutput_UppercaseHexPreserved(t *testing.T) {
	output := "? (10.0.0.2) at AA:BB:CC:DD:EE:FF [ether] on br0"

	devices := ParseARPOutput(output)

	if len(devices) != 1 {
		t.Fatalf("ParseARPOutput() returned %d devices, want 1", len(devices))
	}
	// Case is copied from the source; only separators are normalized
	if devices[0].MAC != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("MAC = %s, want AA:BB:CC:DD:EE:FF", devices[0].MAC)
	}
}

func TestParseARPOutput_NoDeduplication(t *testing.T) {
	// Two lines for the same IP produce two entries
	output := `? (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on eth0
? (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on wlan0`

	devices := ParseARPOutput(output)

	if len(devices) != 2 {
		t.Errorf("ParseARPOutput() returned %d devices, want 2 (no dedup)", len(devices))
	}
}

func TestParseARPOutput_FirstPairPerLine(t *testing.T) {
	// Only the first qualifying IP/MAC pair on a line is taken
	output := "? (192.168.1.1) at aa:bb:cc:dd:ee:ff and also (192.168.1.2) at 11:22:33:44:55:66"

	devices := ParseARPOutput(output)

	if len(devices) != 1 {
		t.Fatalf("ParseARPOutput() returned %d devices, want 1", len(devices))
	}
	if devices[0].IP != "192.168.1.1" || devices[0].MAC != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("ParseARPOutput() = %v, want first pair only", devices[0])
	}
}

func TestParseARPOutput_LineOrderPreserved(t *testing.T) {
	output := `? (10.0.0.3) at 03:03:03:03:03:03 on eth0
? (10.0.0.1) at 01:01:01:01:01:01 on eth0
? (10.0.0.2) at 02:02:02:02:02:02 on eth0`

	devices := ParseARPOutput(output)

	if len(devices) != 3 {
		t.Fatalf("ParseARPOutput() returned %d devices, want 3", len(devices))
	}
	if devices[0].IP != "10.0.0.3" || devices[1].IP != "10.0.0.1" || devices[2].IP != "10.0.0.2" {
		t.Errorf("devices not in line order: %v", devices)
	}
}
