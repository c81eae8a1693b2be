package netscan

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"netscene/internal/logging"
)

// arpLineRegex matches an IPv4 address followed by a MAC address on a single
// line. MAC groups may be joined by ':' or '-' (Windows uses dashes), but the
// separator must be consistent within one address. Case-insensitive so that
// uppercase hex from some platforms still matches.
var arpLineRegex = regexp.MustCompile(
	`(?i)([0-9]{1,3}(?:\.[0-9]{1,3}){3})` + // IPv4 address
		`.*?` +
		`([0-9a-f]{2}(?:(?::[0-9a-f]{2}){5}|(?:-[0-9a-f]{2}){5}))`, // MAC address
)

// ParseARPOutput parses the raw text of an ARP table into device records.
//
// A line produces a device when it contains an IPv4-shaped token followed by
// a MAC-shaped token (six two-hex-digit groups, ':' or '-' separated). The
// exact column layout differs between platforms, so matching is positional
// only: first qualifying IP, then first qualifying MAC after it. Lines that
// don't match (headers, blank lines, incomplete entries) are skipped without
// error, since partial tables are normal on some platforms.
//
// MAC separators are normalized to ':' in the result. IPs are copied
// verbatim from the source text. Entries are returned in line order and are
// not deduplicated.
func ParseARPOutput(output string) []Device {
	logging.Debug("Parsing ARP table output")

	devices := []Device{}
	for _, line := range strings.Split(output, "\n") {
		m := arpLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		devices = append(devices, Device{
			IP:  m[1],
			MAC: strings.ReplaceAll(m[2], "-", ":"),
		})
	}

	logging.Debug("Parsed ARP table", zap.Int("devices", len(devices)))
	return devices
}
