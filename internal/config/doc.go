// Package config provides user configuration management for NetScene.
//
// This package manages a YAML-based configuration file that stores user
// defaults such as the Pi-hole host and scan timeout. The configuration
// follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/netscene/config.yaml or $HOME/.config/netscene/config.yaml
//   - macOS: $HOME/.config/netscene/config.yaml
//   - Windows: %LOCALAPPDATA%\netscene\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores the Pi-hole admin password. It is
// always prompted from the user when needed.
//
// # Usage Example
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.SetPiholeHost("192.168.1.100")
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
package config
