package config

// Settings represents the entire user configuration file.
// This stores defaults so the user doesn't have to retype the Pi-hole host
// on every invocation.
type Settings struct {
	Version int          `yaml:"version"`
	Pihole  *PiholePrefs `yaml:"pihole,omitempty"`
	Scan    *ScanPrefs   `yaml:"scan,omitempty"`
}

// PiholePrefs represents Pi-hole connection preferences.
// Note: the admin password is NEVER stored - it is always prompted.
type PiholePrefs struct {
	Host string `yaml:"host,omitempty"` // Default host (e.g., "192.168.1.100" or "https://pi.hole")
	// Password is NEVER stored in config file for security reasons
}

// ScanPrefs represents network scan preferences.
type ScanPrefs struct {
	Timeout int `yaml:"timeout"` // ARP command timeout in seconds
}

// NewSettings creates a new Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Pihole:  &PiholePrefs{},
		Scan: &ScanPrefs{
			Timeout: 10,
		},
	}
}

// SetPiholeHost records the default Pi-hole host.
func (s *Settings) SetPiholeHost(host string) {
	if s.Pihole == nil {
		s.Pihole = &PiholePrefs{}
	}
	s.Pihole.Host = host
}

// PiholeHost returns the default Pi-hole host, or empty when unset.
func (s *Settings) PiholeHost() string {
	if s.Pihole == nil {
		return ""
	}
	return s.Pihole.Host
}

// ScanTimeout returns the scan timeout in seconds, falling back to the default.
func (s *Settings) ScanTimeout() int {
	if s.Scan == nil || s.Scan.Timeout <= 0 {
		return 10
	}
	return s.Scan.Timeout
}
