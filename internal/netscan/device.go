package netscan

import "fmt"

// Device represents a device discovered in the local ARP table
type Device struct {
	// IP is the IPv4 address as printed by the ARP table (e.g., "192.168.1.1")
	IP string

	// MAC is the hardware address, normalized to colon separators
	// (e.g., "aa:bb:cc:dd:ee:ff")
	MAC string
}

// String returns a human-readable string representation of the device
func (d Device) String() string {
	return fmt.Sprintf("%s (%s)", d.IP, d.MAC)
}
