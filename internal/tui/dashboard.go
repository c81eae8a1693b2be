package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"netscene/internal/pihole"
)

// Messages for async operations
type statsFetchStartMsg struct{}
type statsFetchCompleteMsg struct {
	stats *pihole.Stats
	err   error
}

// dashboardKeyMap defines key bindings for the stats dashboard
type dashboardKeyMap struct {
	Refresh  key.Binding
	Password key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Password, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Password, k.Back, k.Quit},
	}
}

// passwordKeyMap defines key bindings for the password entry dialog
type passwordKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k passwordKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k passwordKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Cancel},
	}
}

// DashboardModel represents the Pi-hole stats screen state
type DashboardModel struct {
	// Target Pi-hole
	Host     string
	Password string

	// Fetch state
	Fetching bool
	Stats    *pihole.Stats
	Err      error

	// Password entry state
	PasswordMode  bool
	PasswordInput textinput.Model

	// UI state
	Width        int
	Height       int
	Spinner      spinner.Model
	Help         help.Model
	Keys         dashboardKeyMap
	PasswordKeys passwordKeyMap

	backRequested bool
}

// NewDashboardModel creates a new stats dashboard for the given Pi-hole host
func NewDashboardModel(host string) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	passwordInput := textinput.New()
	passwordInput.Placeholder = "admin password"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'
	passwordInput.CharLimit = 128
	passwordInput.Width = 30

	h := help.New()

	keys := dashboardKeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Password: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "password"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	passwordKeys := passwordKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	return DashboardModel{
		Host:          host,
		PasswordInput: passwordInput,
		Spinner:       s,
		Help:          h,
		Keys:          keys,
		PasswordKeys:  passwordKeys,
	}
}

// Init initializes the dashboard and starts the first fetch
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return statsFetchStartMsg{} },
		fetchStats(m.Host, m.Password),
		m.Spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.PasswordMode {
			return m.updatePasswordMode(msg)
		}
		return m.updateNormalMode(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case statsFetchStartMsg:
		m.Fetching = true

	case statsFetchCompleteMsg:
		m.Fetching = false
		m.Stats = msg.stats
		m.Err = msg.err

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, cmd
}

// updateNormalMode handles keyboard input on the dashboard
func (m DashboardModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "b":
		m.backRequested = true
		return m, nil

	case "r":
		m.Err = nil
		return m, tea.Batch(
			func() tea.Msg { return statsFetchStartMsg{} },
			fetchStats(m.Host, m.Password),
			m.Spinner.Tick,
		)

	case "p":
		m.PasswordMode = true
		m.PasswordInput.SetValue("")
		m.PasswordInput.Focus()
	}

	return m, nil
}

// updatePasswordMode handles keyboard input in the password dialog
func (m DashboardModel) updatePasswordMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		m.PasswordMode = false
		m.PasswordInput.SetValue("")
		m.PasswordInput.Blur()
		return m, nil

	case "enter":
		// The password is held for this session only, never persisted
		m.Password = m.PasswordInput.Value()
		m.PasswordMode = false
		m.PasswordInput.SetValue("")
		m.PasswordInput.Blur()
		return m, tea.Batch(
			func() tea.Msg { return statsFetchStartMsg{} },
			fetchStats(m.Host, m.Password),
			m.Spinner.Tick,
		)
	}

	m.PasswordInput, cmd = m.PasswordInput.Update(msg)
	return m, cmd
}

// IsBackRequested reports whether the user asked to return to discovery
func (m DashboardModel) IsBackRequested() bool {
	return m.backRequested
}

// View renders the dashboard screen
func (m DashboardModel) View() string {
	var content string
	if m.PasswordMode {
		content = m.renderPasswordEntry()
	} else if m.Fetching {
		content = m.renderFetching()
	} else {
		content = m.renderStats()
	}

	var helpText string
	if m.PasswordMode {
		helpText = m.Help.View(m.PasswordKeys)
	} else {
		helpText = m.Help.View(m.Keys)
	}

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderFetching renders the in-flight fetch indicator
func (m DashboardModel) renderFetching() string {
	status := fmt.Sprintf("%s Fetching Pi-hole stats from %s...", m.Spinner.View(), m.Host)
	return "\n" + SpinnerStyle.Render(status) + "\n"
}

// renderStats renders the stats card or an error with troubleshooting hints
func (m DashboardModel) renderStats() string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("Pi-hole @ %s", m.Host)))
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(RenderError(fmt.Sprintf("Fetch failed: %v", m.Err)))
		b.WriteString("\n\n")
		hint := pihole.GetTroubleshootingHint(m.Err)
		b.WriteString("  " + strings.ReplaceAll(hint, "\n", "\n  "))
		b.WriteString("\n\n")
		b.WriteString("  Press 'p' to supply the admin password, or 'r' to retry.\n")
		return b.String()
	}

	if m.Stats == nil {
		b.WriteString(RenderSubtitle("No data yet. Press 'r' to fetch."))
		b.WriteString("\n")
		return b.String()
	}

	statusStyle := lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
	if m.Stats.Status != "enabled" {
		statusStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	}

	var card strings.Builder
	card.WriteString(fmt.Sprintf("Status:            %s\n", statusStyle.Render(m.Stats.Status)))
	card.WriteString(fmt.Sprintf("Domains blocked:   %d\n", m.Stats.DomainsBeingBlocked))
	card.WriteString(fmt.Sprintf("Queries today:     %d\n", m.Stats.DNSQueriesToday))
	card.WriteString(fmt.Sprintf("Ads blocked today: %d\n", m.Stats.AdsBlockedToday))
	card.WriteString(fmt.Sprintf("Ads percentage:    %.2f%%", m.Stats.AdsPercentageToday))

	b.WriteString(StatsCardStyle.Render(card.String()))
	b.WriteString("\n")

	return b.String()
}

// renderPasswordEntry renders the password entry dialog
func (m DashboardModel) renderPasswordEntry() string {
	var b strings.Builder

	b.WriteString(RenderSubtitle("Enter Pi-hole admin password (kept for this session only)"))
	b.WriteString("\n\n")
	b.WriteString("  Password: ")
	b.WriteString(m.PasswordInput.View())
	b.WriteString("\n\n")

	return b.String()
}

// fetchStats is a command that retrieves Pi-hole stats for the host
func fetchStats(host, password string) tea.Cmd {
	return func() tea.Msg {
		client := pihole.NewClient()
		stats, err := client.FetchStats(host, password)
		return statsFetchCompleteMsg{
			stats: stats,
			err:   err,
		}
	}
}
