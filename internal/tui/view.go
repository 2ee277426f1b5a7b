package tui

import (
	"fmt"
	"strings"
)

// View renders the watch screen.
func (m WatchModel) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("IDN server watch"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("provider %s · group %d · timeout %s · every %s",
		m.providerName, m.group, m.timeout, m.interval)))
	b.WriteString("\n\n")

	switch {
	case m.scanning && m.passes == 0:
		b.WriteString(fmt.Sprintf("%s scanning...\n", m.spinner.View()))

	case m.lastErr != nil:
		b.WriteString(errorTextStyle.Render(fmt.Sprintf("scan failed: %v", m.lastErr)))
		b.WriteString("\n")

	case len(m.servers) == 0:
		b.WriteString(mutedStyle.Render("No servers found."))
		b.WriteString("\n")

	default:
		for _, line := range m.serverLines() {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d server(s)", len(m.servers))
	if !m.lastScan.IsZero() {
		status += fmt.Sprintf(" · last scan %s", m.lastScan.Format("15:04:05"))
	}
	if m.scanning && m.passes > 0 {
		status += fmt.Sprintf(" · %s rescanning", m.spinner.View())
	}
	b.WriteString(mutedStyle.Render(status))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
