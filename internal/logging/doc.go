// Package logging provides structured logging for NetScene.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the application. Logging is silent by default so
// CLI and TUI output stays clean; set NETSCENE_LOG_LEVEL to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (endpoint probes, response previews)
//   - Info: Normal operations (scans, successful fetches)
//   - Warn: Non-fatal issues
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Requesting Pi-hole stats",
//	    zap.String("host", "192.168.1.100"),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogDeviceScan(len(devices))
//	logging.LogEndpointProbe("modern API", url, err)
//	logging.LogResponsePreview("legacy API", body)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
