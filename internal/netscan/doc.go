// Package netscan provides local network device discovery for NetScene.
//
// This package reads the operating system's ARP table via the `arp -a`
// command and parses its textual output into structured device records.
// The ARP table format varies between platforms (Linux, macOS, Windows all
// print different layouts), so parsing is deliberately loose: any line that
// contains an IPv4 address followed by a MAC address is treated as a device
// entry, and everything else (headers, incomplete entries) is skipped.
//
// # Discovery Process
//
//  1. Run `arp -a` with a bounded timeout
//  2. Parse each output line for an IP/MAC pair
//  3. Normalize MAC separators to ':' (Windows prints '-')
//  4. Return devices in the order they appear in the table
//
// # Usage Example
//
//	scanner := netscan.NewScanner()
//	devices, err := scanner.Scan()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, device := range devices {
//	    fmt.Printf("Found: %s at %s\n", device.IP, device.MAC)
//	}
//
// # Limitations
//
// The ARP table only contains hosts the machine has recently communicated
// with. This package takes a single snapshot; it does not probe the network
// to populate the table, and it does not deduplicate entries.
package netscan
