package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bookfinder/internal/ui/input/types"
)

type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys

	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, keys.Open):
		if k := ctx.SelectedKey(); k != "" {
			return []types.Action{types.OpenDetailAction{Key: k}}, true
		}
		return nil, true

	case key.Matches(msg, keys.NextPage):
		return []types.Action{types.NextPageAction{}}, true

	case key.Matches(msg, keys.PrevPage):
		return []types.Action{types.PrevPageAction{}}, true

	case key.Matches(msg, keys.FocusQuery):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case key.Matches(msg, keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}
