package command

import (
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"bookfinder/internal/ui"
)

// browse runs the interactive search view
func (e *env) browse(cliCtx *cli.Context) error {
	query := cliCtx.String("query")
	if cliCtx.NArg() > 0 {
		query = strings.Join(cliCtx.Args().Slice(), " ")
	}

	// Requests in flight are abandoned on SIGTERM
	ctx, stop := signal.NotifyContext(cliCtx.Context, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(e.client, ui.Options{
		Context:      ctx,
		PageSize:     e.cfg.PageSize,
		InitialQuery: query,
		Logger:       e.log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	e.log.WithField("query", query).Info("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "could not run program")
	}
	e.log.Info("UI exited normally")

	return nil
}
