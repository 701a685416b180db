package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Labels shared with tests and the plain-text printer
const (
	AppTitle       = "📚 Book Finder"
	SearchButton   = "Search"
	LoadingText    = "Loading books..."
	PreviousButton = "◀ Previous"
	NextButton     = "Next ▶"
)

// Lines used by everything around the card list: title, search bar, status,
// pagination, help and the container padding.
const chromeHeight = 13

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string
	QueryFocused   bool
	Loading        bool
	SpinnerView    string
	Error          string
	Cards          []CardState
	Cursor         int
	ResultsFocused bool
	Page           int
	NumFound       int
	ShowPagination bool
	CanPrev        bool
	CanNext        bool
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding

	content.WriteString(r.styles.Title.Render(AppTitle))
	content.WriteString("\n")
	content.WriteString(r.renderSearchBar(state, availableWidth))
	content.WriteString("\n")

	// Loading and error are independent; both render when both are set
	if state.Loading {
		content.WriteString(r.styles.Loading.Render(fmt.Sprintf("%s %s", state.SpinnerView, LoadingText)))
		content.WriteString("\n")
	}
	if state.Error != "" {
		content.WriteString(r.styles.Error.Render(state.Error))
		content.WriteString("\n")
	}

	if len(state.Cards) > 0 {
		content.WriteString("\n")
		content.WriteString(r.renderCards(state, availableWidth))
	}

	if state.ShowPagination {
		content.WriteString("\n")
		content.WriteString(r.renderPagination(state))
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderSearchBar(state ViewState, width int) string {
	inputStyle := r.styles.Input
	if state.QueryFocused {
		inputStyle = r.styles.InputFocused
	}

	button := r.styles.Button.Render(SearchButton)
	inputWidth := width - lipgloss.Width(button) - 5
	if inputWidth < 20 {
		inputWidth = 20
	}

	input := inputStyle.Width(inputWidth).Render(state.InputView)
	return lipgloss.JoinHorizontal(lipgloss.Top, input, " ", button)
}

// renderCards renders the window of cards that fits the terminal, keeping the cursor visible
func (r *Renderer) renderCards(state ViewState, width int) string {
	first, last := cardWindow(len(state.Cards), state.Cursor, state.Height)

	var b strings.Builder
	if first > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", first)))
		b.WriteString("\n")
	}
	for i := first; i < last; i++ {
		selected := state.ResultsFocused && i == state.Cursor
		b.WriteString(r.cardRender.RenderCard(state.Cards[i], selected, width))
		b.WriteString("\n")
	}
	if last < len(state.Cards) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Cards)-last)))
		b.WriteString("\n")
	}
	return b.String()
}

// cardWindow returns the half-open range of cards to draw for a terminal of height rows
func cardWindow(total, cursor, height int) (int, int) {
	// Four lines of content plus the margin
	const cardHeight = 5

	if height <= 0 {
		return 0, total
	}
	visible := (height - chromeHeight) / cardHeight
	if visible < 1 {
		visible = 1
	}
	if visible >= total {
		return 0, total
	}

	first := 0
	if cursor >= visible {
		first = cursor - visible + 1
	}
	return first, first + visible
}

func (r *Renderer) renderPagination(state ViewState) string {
	prev := r.styles.PageButtonOff.Render(PreviousButton)
	if state.CanPrev {
		prev = r.styles.PageButton.Render(PreviousButton)
	}
	next := r.styles.PageButtonOff.Render(NextButton)
	if state.CanNext {
		next = r.styles.PageButton.Render(NextButton)
	}
	page := r.styles.PageIndicator.Render(fmt.Sprintf("Page %d", state.Page))

	row := lipgloss.JoinHorizontal(lipgloss.Top, prev, "   ", page, "   ", next)
	if state.NumFound > 0 {
		row += r.styles.Dim.Render(fmt.Sprintf("   (%d found)", state.NumFound))
	}
	return row
}
