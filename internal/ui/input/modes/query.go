package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookfinder/internal/ui/input/types"
)

// QueryMode edits the search term. Enter submits it without leaving the input.
type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", ti),
	}
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.Submit):
		return []types.Action{types.SubmitQueryAction{Text: m.value()}}, true

	case msg.Type == tea.KeyEsc, key.Matches(msg, types.Keys.FocusResult):
		if ctx.HasResults() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
		}
		// Nothing to move to yet
		return nil, true
	}

	return m.TextInputMode.HandleKey(msg, ctx)
}
