package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"netscene/internal/config"
	"netscene/internal/netscan"
	"netscene/internal/pihole"
	"netscene/internal/tui"
)

// Command flags
var (
	piholeHost   string
	scanTimeout  int
	outputFormat string
	askPassword  bool
	saveHost     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&piholeHost, "host", "", "Pi-hole host (IP, hostname, or URL)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dashboardCmd)
}

// scanCmd lists devices from the system ARP table
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List devices from the system ARP table",
	Long: `Take a snapshot of the system ARP table and list the devices in it.

The ARP table only contains hosts this machine has recently communicated
with; this command does not probe the network to populate it.`,
	Example: `  # List devices
  netscene scan

  # Allow the arp command more time on slow systems
  netscene scan --timeout 30`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 10, "arp command timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	devices, err := netscan.Scan(time.Duration(scanTimeout) * time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		fmt.Println("No devices found in the ARP table.")
		fmt.Println("\nThe ARP table only lists hosts this machine has talked to recently.")
		fmt.Println("Try pinging a device first, then scan again.")
		return nil
	}

	fmt.Printf("Found %d device(s):\n\n", len(devices))
	for i, device := range devices {
		fmt.Printf("%d. %s\n", i+1, device.IP)
		fmt.Printf("   MAC: %s\n\n", device.MAC)
	}

	fmt.Println("Use 'netscene stats --host <ip>' to query a Pi-hole")
	return nil
}

// statsCmd fetches Pi-hole statistics once and prints them
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetch Pi-hole ad-blocking statistics",
	Long: `Fetch the ad-blocking summary from a Pi-hole instance.

Both the modern (v6 FTL) and legacy API endpoints are probed, so this works
regardless of Pi-hole version. If the API requires authentication, pass
--ask-password to be prompted for the admin password.`,
	Example: `  # Fetch stats from a specific host
  netscene stats --host 192.168.1.100

  # HTTPS-only Pi-hole
  netscene stats --host https://pi.hole

  # Authenticated instance (prompts without echoing)
  netscene stats --host 192.168.1.100 --ask-password

  # JSON output for scripting
  netscene stats --host 192.168.1.100 --format json

  # Remember the host for future invocations
  netscene stats --host 192.168.1.100 --save`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
	statsCmd.Flags().BoolVar(&askPassword, "ask-password", false, "Prompt for the Pi-hole admin password")
	statsCmd.Flags().BoolVar(&saveHost, "save", false, "Save the host as the default in the config file")
}

func runStats(cmd *cobra.Command, args []string) error {
	host, err := resolveHost()
	if err != nil {
		return err
	}

	password := ""
	if askPassword {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	client := pihole.NewClient()
	stats, err := client.FetchStats(host, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, pihole.GetTroubleshootingHint(err))
		return err
	}

	switch outputFormat {
	case "compact":
		fmt.Println(stats.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		fallthrough
	default:
		fmt.Println(stats.FormatDetailed())
	}

	if saveHost {
		if err := persistHost(host); err != nil {
			return err
		}
		fmt.Printf("Saved %s as the default Pi-hole host.\n", host)
	}

	return nil
}

// dashboardCmd launches the interactive TUI
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard provides:
- Device discovery from the system ARP table
- Pi-hole statistics for any selected or manually entered host
- On-demand password entry for authenticated Pi-hole instances

This is the recommended way to use netscene for most users.`,
	Example: `  # Launch dashboard with device discovery
  netscene dashboard
  # Or simply (dashboard is default):
  netscene

  # Jump straight to stats for a known host
  netscene dashboard --host 192.168.1.100
  netscene --host 192.168.1.100`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	host := piholeHost
	if host == "" {
		// Fall back to the configured default, if any
		if settings, err := config.LoadSettings(); err == nil {
			host = settings.PiholeHost()
		}
	}

	var model tea.Model
	if host != "" {
		model = tui.NewAppModel(tui.ScreenDashboard, host)
	} else {
		model = tui.NewAppModel(tui.ScreenDiscovery, "")
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}

// resolveHost returns the host from the --host flag or the config file
func resolveHost() (string, error) {
	if piholeHost != "" {
		return piholeHost, nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.PiholeHost() != "" {
		return settings.PiholeHost(), nil
	}

	return "", fmt.Errorf("no Pi-hole host specified. Use --host or save one with --save")
}

// promptPassword reads the admin password from the terminal without echoing
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Pi-hole admin password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// persistHost stores the host as the default in the config file
func persistHost(host string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.SetPiholeHost(host)
	if err := settings.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
