package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoCoverText is shown in place of a cover link for records without one
const NoCoverText = "No Cover"

// CardState is everything one result card displays
type CardState struct {
	Title    string
	Authors  string // already joined, or "Unknown"
	Year     string // or "N/A"
	CoverURL string // empty renders the placeholder
}

// CardRenderer handles rendering of result cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard renders one result. width is the space available to the card.
func (r *CardRenderer) RenderCard(card CardState, selected bool, width int) string {
	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}

	// Border and padding take two columns
	inner := width - 2
	if inner < 20 {
		inner = 20
	}

	cover := r.styles.NoCover.Render("[" + NoCoverText + "]")
	if card.CoverURL != "" {
		cover = r.styles.CoverURL.Render(card.CoverURL)
	}

	title := card.Title
	if title == "" {
		title = "(untitled)"
	}

	lines := []string{
		r.styles.CardTitle.Render(truncate(title, inner)),
		r.styles.Label.Render("Author: ") + truncate(card.Authors, inner-len("Author: ")),
		r.styles.Label.Render("Published: ") + card.Year,
		r.styles.Label.Render("Cover: ") + cover,
	}

	return style.Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most width visible cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
