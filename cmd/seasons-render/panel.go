package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tobyhogan/seasons-viewer-tool/internal/panel"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(36)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func section(title string, readings []panel.Reading) []string {
	out := []string{headerStyle.Render(title)}
	for _, r := range readings {
		out = append(out, row(r.Name, strings.TrimPrefix(r.String(), r.Name+": ")))
	}
	return out
}

// renderPanel lays the info panel out as two boxes: the selected day and the
// selected time.
func renderPanel(info panel.Info, location string) string {
	day := []string{row("Day Selected", info.Date)}
	day = append(day, section("Seasonal", info.Seasonal)...)
	if info.Sunrise != "" {
		day = append(day, row("Sunrise", info.Sunrise), row("Sunset", info.Sunset))
	}
	day = append(day, section("Measured", info.Measured)...)

	tm := []string{row("Time Selected", info.TimeSelected)}
	tm = append(tm, section("Current", info.Current)...)

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, day...)),
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, tm...)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Seasons at "+location), boxes)
}
