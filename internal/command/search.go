package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"bookfinder/internal/catalog"
	"bookfinder/internal/ui/state"
	"bookfinder/internal/ui/views"
)

func (e *env) searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Print one page of results without the interactive view",
		ArgsUsage: "TITLE...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "page",
				Aliases: []string{"p"},
				Value:   1,
				Usage:   "Page number to fetch, starting at 1",
			},
		},
		Action: e.search,
	}
}

func (e *env) search(cliCtx *cli.Context) error {
	query := strings.Join(cliCtx.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return errors.New("a title to search for is required")
	}

	page := cliCtx.Int("page")
	if page < 1 {
		return errors.Errorf("invalid page %d: pages start at 1", page)
	}

	st := state.NewSearchState(e.cfg.PageSize)
	st.Query = query
	st.Begin(page)

	fields := logrus.Fields{"query": query, "page": page}
	resp, err := e.client.Search(cliCtx.Context, query, page)
	if err != nil {
		e.log.WithError(err).WithFields(fields).Error("search failed")
		st.Fail()
		fmt.Fprintln(cliCtx.App.ErrWriter, st.Error)
		return errors.Wrap(errReported, err.Error())
	}

	st.Apply(resp.NumFound, resp.Summaries())
	e.log.WithFields(fields).WithField("num_found", resp.NumFound).Info("search completed")

	return errors.WithStack(printResults(cliCtx.App.Writer, st, e.client))
}

type coverLinker interface {
	CoverURL(coverID int, size catalog.CoverSize) string
}

// printResults writes the cards and pagination line as plain text
func printResults(w io.Writer, st *state.SearchState, covers coverLinker) error {
	var b strings.Builder

	if st.Error != "" {
		b.WriteString(st.Error)
		b.WriteString("\n")
	}

	for _, book := range st.Results {
		cover := "[" + views.NoCoverText + "]"
		if book.HasCover() {
			cover = covers.CoverURL(*book.CoverID, catalog.CoverMedium)
		}

		fmt.Fprintf(&b, "%s\n", book.Title)
		fmt.Fprintf(&b, "  Author: %s\n", book.AuthorLine())
		fmt.Fprintf(&b, "  Published: %s\n", book.YearLine())
		fmt.Fprintf(&b, "  Cover: %s\n\n", cover)
	}

	if st.ShowPagination() {
		fmt.Fprintf(&b, "Page %d (%d found)", st.Page, st.NumFound)
		if st.CanPrev() {
			fmt.Fprintf(&b, "  %s: --page %d", views.PreviousButton, st.Page-1)
		}
		if st.CanNext() {
			fmt.Fprintf(&b, "  %s: --page %d", views.NextButton, st.Page+1)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
