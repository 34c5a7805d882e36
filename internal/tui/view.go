package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/dgallion1/wordsearch/internal/prefs"
	"github.com/dgallion1/wordsearch/internal/search"
)

const heroTagline = "The most epic XML word searcher"

const maxBarWidth = 30

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	helper  lipgloss.Style
	result  lipgloss.Style
	bar     lipgloss.Style
}

func stylesFor(theme prefs.Theme) styles {
	fg, accent, muted := lipgloss.Color("#111111"), lipgloss.Color("#5b57c9"), lipgloss.Color("#6b7280")
	if theme == prefs.Dark {
		fg, accent, muted = lipgloss.Color("#eeeeee"), lipgloss.Color("#8884d8"), lipgloss.Color("#9ca3af")
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		section: lipgloss.NewStyle().Bold(true).Foreground(fg).MarginTop(1),
		helper:  lipgloss.NewStyle().Foreground(muted),
		result:  lipgloss.NewStyle().Foreground(fg),
		bar:     lipgloss.NewStyle().Foreground(accent),
	}
}

func (m *model) View() string {
	parts := []string{
		m.styles.title.Render(heroTagline),
		m.input.View(),
	}

	if m.infoMessage != "" {
		parts = append(parts, m.styles.helper.Render(m.infoMessage))
	}

	switch {
	case m.query.NoResults():
		parts = append(parts, fmt.Sprintf("No results found for: %s", m.query.Term))
	case len(m.query.Visible()) > 0:
		parts = append(parts, m.resultsView(), m.statsView(), m.chartView())
	}

	parts = append(parts, m.styles.helper.Render(m.helpText()))
	return strings.Join(parts, "\n") + "\n"
}

func (m *model) resultsView() string {
	width := max(20, m.width-4)
	var b strings.Builder
	b.WriteString(m.styles.section.Render("Results"))
	for _, u := range m.query.Visible() {
		b.WriteString("\n")
		b.WriteString(m.styles.result.Render("• " + wordwrap.String(u.Text, width)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.helper.Render(fmt.Sprintf("Showing %d of %d", len(m.query.Visible()), len(m.query.Matches()))))
	return b.String()
}

func (m *model) statsView() string {
	s := m.query.Stats
	lines := []string{
		m.styles.section.Render("Statistics"),
		fmt.Sprintf("Total Results: %d", s.Total),
		fmt.Sprintf("Male: %d", s.Male),
		fmt.Sprintf("Female: %d", s.Female),
	}
	if s.InvalidAge > 0 {
		lines = append(lines, fmt.Sprintf("Invalid age: %d", s.InvalidAge))
	}
	lines = append(lines, "Age Groups:")
	for _, b := range search.Buckets {
		lines = append(lines, fmt.Sprintf("  %s: %d", b, s.AgeGroup(b)))
	}
	return strings.Join(lines, "\n")
}

func (m *model) chartView() string {
	bars := search.Chart(m.query.Stats)
	top := search.MaxCount(bars)

	lines := []string{m.styles.section.Render("Visualization")}
	for _, b := range bars {
		n := 0
		if top > 0 {
			n = b.Count * maxBarWidth / top
		}
		lines = append(lines, fmt.Sprintf("%-6s %s %d", b.Name, m.styles.bar.Render(strings.Repeat("█", n)), b.Count))
	}
	return strings.Join(lines, "\n")
}

func (m *model) helpText() string {
	help := "enter search • ctrl+t theme (" + string(m.theme) + ") • esc quit"
	if m.query.HasMore() {
		help = "ctrl+n show more • " + help
	}
	return help
}
