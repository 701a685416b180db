package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"bookfinder/internal/catalog"
	"bookfinder/internal/ui/input"
	"bookfinder/internal/ui/input/types"
	"bookfinder/internal/ui/opener"
	"bookfinder/internal/ui/state"
	"bookfinder/internal/ui/views"
)

// Catalog is the part of the catalog client the view depends on
type Catalog interface {
	Search(ctx context.Context, query string, page int) (*catalog.SearchResponse, error)
	CoverURL(coverID int, size catalog.CoverSize) string
	DetailURL(key string) string
}

// Options configures a Model
type Options struct {
	// Context bounds every request. It is never cancelled per search.
	Context      context.Context
	PageSize     int
	InitialQuery string
	Logger       logrus.FieldLogger
	Opener       opener.Opener
}

// Model is the search view: it owns the search state and performs all I/O
type Model struct {
	ctx     context.Context
	catalog Catalog
	opener  opener.Opener
	logger  logrus.FieldLogger
	state   *state.SearchState

	width   int
	height  int
	help    help.Model
	spinner spinner.Model

	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// search once on Init when started with a query
	autoSearch bool
}

// NewModel creates a new search view backed by cat
func NewModel(cat Catalog, opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Opener == nil {
		opts.Opener = opener.NewSystem()
	}

	st := state.NewSearchState(opts.PageSize)
	st.Query = opts.InitialQuery

	m := &Model{
		ctx:          opts.Context,
		catalog:      cat,
		opener:       opts.Opener,
		logger:       opts.Logger,
		state:        st,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		inputHandler: input.New(opts.InitialQuery),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		autoSearch:   opts.InitialQuery != "",
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// State exposes the current search state for inspection
func (m *Model) State() state.SearchState {
	return *m.state
}

// Mode returns the current input mode
func (m *Model) Mode() types.Mode {
	return m.inputHandler.CurrentMode()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.autoSearch {
		m.autoSearch = false
		cmds = append(cmds, m.Search(1))
	}
	return tea.Batch(cmds...)
}

// Search starts a fetch of page for the current query. A blank query is a
// no-op and returns nil. Requests already in flight are not cancelled; the
// last response to arrive determines the final state.
func (m *Model) Search(page int) tea.Cmd {
	if !m.state.Begin(page) {
		return nil
	}

	ctx, cat := m.ctx, m.catalog
	query := m.state.Query
	page = m.state.Page

	m.logger.WithFields(logrus.Fields{
		"query": query,
		"page":  page,
	}).Info("search started")

	return func() tea.Msg {
		resp, err := cat.Search(ctx, query, page)
		return searchResultMsg{query: query, page: page, resp: resp, err: err}
	}
}

// NextPage searches the following page when numFound extends past this one
func (m *Model) NextPage() tea.Cmd {
	if !m.state.CanNext() {
		return nil
	}
	return m.Search(m.state.Page + 1)
}

// PrevPage searches the preceding page when there is one
func (m *Model) PrevPage() tea.Cmd {
	if !m.state.CanPrev() {
		return nil
	}
	return m.Search(m.state.Page - 1)
}

// OpenDetail opens the record's public page. Failures are only logged.
func (m *Model) OpenDetail(key string) tea.Cmd {
	url := m.catalog.DetailURL(key)
	o := m.opener
	return func() tea.Msg {
		return detailOpenedMsg{url: url, err: o.Open(url)}
	}
}

// HasResults implements types.Context
func (m *Model) HasResults() bool {
	return len(m.state.Results) > 0
}

// SelectedKey implements types.Context
func (m *Model) SelectedKey() string {
	book, ok := m.state.Selected()
	if !ok {
		return ""
	}
	return book.Key
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case searchResultMsg:
		m.applyResult(msg)

	case detailOpenedMsg:
		if msg.err != nil {
			m.logger.WithError(msg.err).WithField("url", msg.url).Warn("failed to open detail page")
		} else {
			m.logger.WithField("url", msg.url).Debug("opened detail page")
		}

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.WithError(msg.err).Warn("help pager failed")
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.UpdateTextAction:
		m.state.Query = a.Text

	case types.SubmitQueryAction:
		m.state.Query = a.Text
		return m.Search(1)

	case types.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1)
		case "down":
			m.state.MoveCursor(1)
		case "home":
			m.state.MoveCursor(-len(m.state.Results))
		case "end":
			m.state.MoveCursor(len(m.state.Results))
		}

	// Page keys follow the pagination row: no paging while it is hidden
	case types.NextPageAction:
		if m.state.ShowPagination() {
			return m.NextPage()
		}

	case types.PrevPageAction:
		if m.state.ShowPagination() {
			return m.PrevPage()
		}

	case types.OpenDetailAction:
		return m.OpenDetail(a.Key)

	case types.ShowHelpAction:
		if m.helpOps == nil {
			return nil
		}
		content := m.helpRenderer.RenderHelpContent()
		ops := m.helpOps
		return func() tea.Msg {
			return helpPagerMsg{err: ops.ShowHelpInPager(content)}
		}

	case types.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) applyResult(msg searchResultMsg) {
	fields := logrus.Fields{"query": msg.query, "page": msg.page}

	switch {
	case msg.err != nil:
		m.logger.WithError(msg.err).WithFields(fields).Error("search failed")
		m.state.Fail()
	case msg.resp == nil:
		m.logger.WithFields(fields).Error("search returned no response")
		m.state.Fail()
	default:
		m.state.Apply(msg.resp.NumFound, msg.resp.Summaries())
		m.logger.WithFields(fields).WithFields(logrus.Fields{
			"num_found": msg.resp.NumFound,
			"shown":     len(m.state.Results),
		}).Info("search completed")
	}

	// Nothing left to select
	if !m.HasResults() {
		m.inputHandler.ChangeMode(types.ModeQuery, m)
	}
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	mode := m.inputHandler.CurrentMode()
	outcome := m.state.Outcome()

	var errText string
	if outcome == state.OutcomeFailed || outcome == state.OutcomeEmpty {
		errText = m.state.Error
	}

	var cards []views.CardState
	if outcome == state.OutcomeSuccess {
		cards = m.cards()
	}

	keys := modeKeys{
		mode:       mode,
		hasResults: m.HasResults(),
		paging:     outcome == state.OutcomeSuccess,
		canPrev:    m.state.CanPrev(),
		canNext:    m.state.CanNext(),
	}

	return views.ViewState{
		Width:          m.width,
		Height:         m.height,
		InputView:      m.inputHandler.TextInput().View(),
		QueryFocused:   mode == types.ModeQuery,
		Loading:        outcome == state.OutcomeLoading,
		SpinnerView:    m.spinner.View(),
		Error:          errText,
		Cards:          cards,
		Cursor:         m.state.Cursor,
		ResultsFocused: mode == types.ModeResults,
		Page:           m.state.Page,
		NumFound:       m.state.NumFound,
		ShowPagination: outcome == state.OutcomeSuccess,
		CanPrev:        m.state.CanPrev(),
		CanNext:        m.state.CanNext(),
		HelpView:       m.help.View(keys),
	}
}

func (m *Model) cards() []views.CardState {
	cards := make([]views.CardState, 0, len(m.state.Results))
	for _, book := range m.state.Results {
		card := views.CardState{
			Title:   book.Title,
			Authors: book.AuthorLine(),
			Year:    book.YearLine(),
		}
		if book.HasCover() {
			card.CoverURL = m.catalog.CoverURL(*book.CoverID, catalog.CoverMedium)
		}
		cards = append(cards, card)
	}
	return cards
}
