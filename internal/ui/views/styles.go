package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	Loading       lipgloss.Style
	Error         lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardTitle     lipgloss.Style
	Label         lipgloss.Style
	NoCover       lipgloss.Style
	CoverURL      lipgloss.Style
	PageButton    lipgloss.Style
	PageButtonOff lipgloss.Style
	PageIndicator lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Foreground(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 1),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1).
			MarginBottom(1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("226")).
			PaddingLeft(1).
			MarginBottom(1),
		CardTitle:     lipgloss.NewStyle().Bold(true),
		Label:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		NoCover:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		CoverURL:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		PageButton:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		PageButtonOff: lipgloss.NewStyle().Faint(true),
		PageIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
