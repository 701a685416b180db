package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"bookfinder/internal/ui/input/types"
)

// modeKeys adapts the shared key map to help.KeyMap for the current mode
type modeKeys struct {
	mode       types.Mode
	hasResults bool
	paging     bool // pagination row is shown
	canPrev    bool
	canNext    bool
}

func (k modeKeys) ShortHelp() []key.Binding {
	keys := types.Keys
	if k.mode == types.ModeQuery {
		bindings := []key.Binding{keys.Submit}
		if k.hasResults {
			bindings = append(bindings, keys.FocusResult)
		}
		return append(bindings, keys.ForceQuit)
	}

	prev, next := keys.PrevPage, keys.NextPage
	prev.SetEnabled(k.paging && k.canPrev)
	next.SetEnabled(k.paging && k.canNext)
	return []key.Binding{keys.Up, keys.Down, keys.Open, prev, next, keys.FocusQuery, keys.Help, keys.Quit}
}

func (k modeKeys) FullHelp() [][]key.Binding {
	keys := types.Keys
	return [][]key.Binding{
		{keys.Submit, keys.FocusResult, keys.FocusQuery},
		{keys.Up, keys.Down, keys.Home, keys.End, keys.Open},
		{keys.PrevPage, keys.NextPage},
		{keys.Help, keys.Quit, keys.ForceQuit},
	}
}
