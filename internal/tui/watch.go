package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idntools/idnls/internal/render"
	"github.com/idntools/idnls/internal/serverlist"
)

// Messages for async operations
type scanDoneMsg struct {
	servers []serverlist.Server
	err     error
	elapsed time.Duration
}

type rescanMsg struct{}

// watchKeyMap defines key bindings for the watch screen
type watchKeyMap struct {
	Rescan key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rescan, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rescan, k.Quit},
	}
}

func defaultWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan now"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WatchModel drives the live server-list screen: it rescans on an interval
// and after each pass shows the same lines the plain listing prints.
type WatchModel struct {
	provider     serverlist.Provider
	providerName string
	group        uint8
	timeout      time.Duration
	interval     time.Duration

	servers  []serverlist.Server
	scanning bool
	lastScan time.Time
	lastErr  error
	passes   int

	spinner spinner.Model
	keys    watchKeyMap
	help    help.Model
	width   int
	quit    bool
}

// NewWatch returns a watch screen over the given provider. The interval is
// the pause between the end of one pass and the start of the next.
func NewWatch(provider serverlist.Provider, providerName string, group uint8, timeout, interval time.Duration) WatchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return WatchModel{
		provider:     provider,
		providerName: providerName,
		group:        group,
		timeout:      timeout,
		interval:     interval,
		scanning:     true,
		spinner:      sp,
		keys:         defaultWatchKeyMap(),
		help:         help.New(),
	}
}

// Init starts the spinner and the first discovery pass.
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scanCmd())
}

// scanCmd runs one discovery pass off the UI goroutine.
func (m WatchModel) scanCmd() tea.Cmd {
	provider, group, timeout := m.provider, m.group, m.timeout
	return func() tea.Msg {
		start := time.Now()
		servers, err := provider.Servers(context.Background(), group, timeout)
		return scanDoneMsg{servers: servers, err: err, elapsed: time.Since(start)}
	}
}

// Update handles messages and key presses.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rescan):
			if m.scanning {
				return m, nil
			}
			m.scanning = true
			return m, tea.Batch(m.spinner.Tick, m.scanCmd())
		}
		return m, nil

	case scanDoneMsg:
		m.scanning = false
		m.lastScan = time.Now()
		m.lastErr = msg.err
		m.passes++
		if msg.err == nil {
			m.servers = msg.servers
		}
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg {
			return rescanMsg{}
		})

	case rescanMsg:
		if m.scanning || m.quit {
			return m, nil
		}
		m.scanning = true
		return m, tea.Batch(m.spinner.Tick, m.scanCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// lineSink collects rendered lines for on-screen display.
type lineSink struct {
	lines []string
}

func (s *lineSink) Line(text string) {
	s.lines = append(s.lines, text)
}

// serverLines renders the current result the same way the plain listing
// prints it, one string per line.
func (m WatchModel) serverLines() []string {
	sink := &lineSink{}
	r := render.New(sink, sink)
	for i := range m.servers {
		r.Server(&m.servers[i])
	}
	return sink.lines
}
