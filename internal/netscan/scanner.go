package netscan

import (
	"context"
	"fmt"
	"os/exec"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"netscene/internal/logging"
)

const (
	// DefaultScanTimeout is the default timeout for the ARP table read
	DefaultScanTimeout = 10 * time.Second
)

// Scanner reads the system ARP table to discover devices on the local network
type Scanner struct {
	// Timeout is the maximum time to wait for the arp command to complete
	Timeout time.Duration
}

// NewScanner creates a new ARP table scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan takes a single snapshot of the ARP table and returns the devices in it
func (s *Scanner) Scan() ([]Device, error) {
	return s.ScanWithContext(context.Background())
}

// ScanWithContext takes an ARP table snapshot with a custom context
func (s *Scanner) ScanWithContext(ctx context.Context) ([]Device, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	logging.Info("Reading ARP table", zap.String("command", "arp -a"))

	output, err := exec.CommandContext(ctx, "arp", "-a").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run arp command: %w", err)
	}

	if !utf8.Valid(output) {
		return nil, fmt.Errorf("arp command output was not valid UTF-8")
	}

	devices := ParseARPOutput(string(output))
	logging.LogDeviceScan(len(devices))
	return devices, nil
}

// Scan is a convenience function to read the ARP table with a custom timeout
func Scan(timeout time.Duration) ([]Device, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan()
}
