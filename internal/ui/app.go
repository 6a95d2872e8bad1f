package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ternarybob/arbor"

	"github.com/calvale/gander/internal/config"
	"github.com/calvale/gander/internal/explain"
	"github.com/calvale/gander/internal/logsource"
	"github.com/calvale/gander/internal/logview"
	"github.com/calvale/gander/internal/prefs"
	"github.com/calvale/gander/internal/viewlink"
)

// View identifies a top-level screen.
type View int

const (
	ViewLogs View = iota
	ViewSettings
)

// noticeTTL is how long a transient notice stays on the bottom line.
const noticeTTL = 4 * time.Second

// Options configures the dashboard.
type Options struct {
	// Context bounds every fetch and explanation; canceling it also
	// stops the program.
	Context context.Context

	// Store persists preferences and the service list. A nil store
	// falls back to an in-memory one, so preferences last the session.
	Store prefs.Store

	// Schema declares the persisted preference keys.
	Schema prefs.Schema

	// Source builds the log source for a service endpoint.
	Source func(endpoint string) (logsource.Source, error)

	// Explainer builds the AI explainer from the current preferences.
	// Called per request so credential and model edits apply without a
	// restart.
	Explainer func() explain.Explainer

	// Config is the loaded application config.
	Config config.Config

	// Logger receives diagnostics. The TUI owns the terminal, so it
	// should write to a file.
	Logger arbor.ILogger

	// Initial selects the service and date shown first.
	Initial viewlink.View
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeWarn
	noticeError
)

// notice is a transient message on the bottom line.
type notice struct {
	text string
	kind noticeKind
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx          context.Context
	store        prefs.Store
	schema       prefs.Schema
	newSource    func(endpoint string) (logsource.Source, error)
	newExplainer func() explain.Explainer
	cfg          config.Config
	log          arbor.ILogger

	keys  keyMap
	theme Theme

	width  int
	height int
	ready  bool

	currentView View

	services []prefs.Service
	service  prefs.Service
	linkDate string    // "today" or an ISO day
	day      time.Time // resolved UTC day of the last fetch

	showLineNumbers bool
	dateFormat      string
	timeFormat      string
	timezone        string

	logs     logsState
	settings settingsState

	spin       spinner.Model
	explaining bool
	explainSeq int
	refreshSeq int

	modal modal

	notice    notice
	noticeSeq int
}

// New builds the dashboard model.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Store == nil {
		opts.Store = prefs.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = arbor.NewLogger()
	}
	if opts.Source == nil {
		opts.Source = func(endpoint string) (logsource.Source, error) {
			return logsource.ForEndpoint(endpoint, logsource.Options{})
		}
	}
	if opts.Explainer == nil {
		opts.Explainer = func() explain.Explainer {
			return explain.New(explain.Config{})
		}
	}
	if opts.Config.SourceTimeout <= 0 || opts.Config.RefreshEvery <= 0 {
		def := config.Default()
		if opts.Config.SourceTimeout <= 0 {
			opts.Config.SourceTimeout = def.SourceTimeout
		}
		if opts.Config.RefreshEvery <= 0 {
			opts.Config.RefreshEvery = def.RefreshEvery
		}
	}

	services := prefs.LoadServices(opts.Store)

	linkDate := strings.ToLower(strings.TrimSpace(opts.Initial.Date))
	if linkDate == "" {
		linkDate = viewlink.Today
	}

	filter := textinput.New()
	filter.Placeholder = "filter all columns"
	filter.Prompt = "/"
	filter.CharLimit = 200

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:          opts.Context,
		store:        opts.Store,
		schema:       opts.Schema,
		newSource:    opts.Source,
		newExplainer: opts.Explainer,
		cfg:          opts.Config,
		log:          opts.Logger,

		keys:  DefaultKeyMap(),
		theme: GetTheme(opts.Config.Theme),

		currentView: ViewLogs,

		services: services,
		service:  pickService(services, opts.Initial.Service),
		linkDate: linkDate,

		showLineNumbers: opts.Schema.ShowLineNumbers.Get(opts.Store),
		dateFormat:      opts.Schema.DateFormat.Get(opts.Store),
		timeFormat:      opts.Schema.TimeFormat.Get(opts.Store),
		timezone:        opts.Schema.Timezone.Get(opts.Store),

		logs: logsState{
			view:        logview.New(opts.Schema.PageSize.Get(opts.Store)),
			filterInput: filter,
		},
		spin: spin,
	}
	m.day = viewlink.View{Date: m.linkDate}.ResolveDate(time.Now())
	return m
}

// pickService matches the initial service by name, ignoring case, and
// falls back to the first configured one.
func pickService(services []prefs.Service, name string) prefs.Service {
	for _, svc := range services {
		if strings.EqualFold(svc.Name, name) {
			return svc
		}
	}
	if len(services) == 0 {
		return prefs.Service{}
	}
	return services[0]
}

// Init enters the alternate screen and requests the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		func() tea.Msg { return fetchRequestMsg{} },
	)
}

// Messages.

// fetchRequestMsg asks the update loop to start a fetch with the
// current selection.
type fetchRequestMsg struct{}

// logsFetchedMsg delivers the entries of fetch number seq.
type logsFetchedMsg struct {
	seq     int
	entries []logsource.Entry
}

// logsFailedMsg delivers the error of fetch number seq.
type logsFailedMsg struct {
	seq int
	err error
}

// explainedMsg delivers the AI explanation of request number seq.
type explainedMsg struct {
	seq  int
	text string
}

// explainFailedMsg delivers the error of explanation request seq.
type explainFailedMsg struct {
	seq int
	err error
}

// copiedMsg reports a clipboard write.
type copiedMsg struct {
	label string
	err   error
}

// noticeExpiredMsg clears the notice with the matching sequence.
type noticeExpiredMsg struct{ seq int }

// refreshTickMsg fires while auto refresh is on.
type refreshTickMsg struct{ seq int }

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.logs.clampCursors()
		m.ensureColumnVisible()
		m.fitModal()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fetchRequestMsg:
		cmd := m.startFetch()
		return m, cmd

	case logsFetchedMsg:
		if msg.seq != m.logs.fetchSeq {
			// A newer fetch superseded this one.
			return m, nil
		}
		m.logs.fetching = false
		m.logs.fetchErr = nil
		m.logs.view.SetEntries(msg.entries)
		m.logs.clampCursors()
		m.ensureColumnVisible()
		m.logs.fetched = time.Now()
		m.log.Info().
			Str("service", m.service.Name).
			Str("date", m.day.Format(logsource.DateLayout)).
			Int("entries", len(msg.entries)).
			Msg("logs fetched")
		return m, nil

	case logsFailedMsg:
		if msg.seq != m.logs.fetchSeq {
			return m, nil
		}
		m.logs.fetching = false
		m.logs.fetchErr = msg.err
		m.logs.view.SetEntries(nil)
		m.logs.clampCursors()
		m.log.Warn().Err(msg.err).
			Str("service", m.service.Name).
			Str("date", m.day.Format(logsource.DateLayout)).
			Msg("log fetch failed")
		return m, nil

	case explainedMsg:
		if msg.seq != m.explainSeq {
			return m, nil
		}
		m.explaining = false
		if em, ok := m.modal.(*explainModal); ok {
			em.setText(&m, msg.text)
		}
		return m, nil

	case explainFailedMsg:
		if msg.seq != m.explainSeq {
			return m, nil
		}
		m.explaining = false
		if _, ok := m.modal.(*explainModal); ok {
			m.modal = nil
		}
		m.log.Warn().Err(msg.err).Msg("explanation failed")
		var cmd tea.Cmd
		if errors.Is(msg.err, explain.ErrNoCredential) {
			cmd = m.setNotice(noticeWarn, "no AI credential: set aiApiKey in settings")
		} else {
			cmd = m.setNotice(noticeError, "explanation failed, try again")
		}
		return m, cmd

	case copiedMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("clipboard write failed")
			cmd = m.setNotice(noticeError, "clipboard unavailable")
		} else {
			cmd = m.setNotice(noticeInfo, "copied "+msg.label)
		}
		return m, cmd

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = notice{}
		}
		return m, nil

	case refreshTickMsg:
		if msg.seq != m.refreshSeq || !m.logs.autoRefresh {
			return m, nil
		}
		cmds := []tea.Cmd{m.scheduleRefresh()}
		if m.dayIsToday() && !m.logs.fetching && m.modal == nil {
			cmds = append(cmds, m.startFetch())
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.logs.fetching && !m.explaining {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes key input: an open modal sees everything first, then
// the filter input, then global bindings, then the current view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != nil {
		cmd, done := m.modal.update(&m, msg)
		if done {
			m.modal = nil
		}
		return m, cmd
	}

	if m.currentView == ViewLogs && m.logs.filterActive {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.modal = newHelpModal()
		return m, nil
	case key.Matches(msg, m.keys.SwitchView):
		if m.currentView == ViewLogs {
			m.currentView = ViewSettings
		} else {
			m.currentView = ViewLogs
		}
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		cmd := m.setNotice(noticeInfo, "theme: "+m.theme.Name)
		return m, cmd
	}

	if m.currentView == ViewSettings {
		return m.handleSettingsKey(msg)
	}
	return m.handleLogsKey(msg)
}

// View renders the screen.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.modal != nil {
		return m.modal.view(&m)
	}
	content := m.renderLogs()
	if m.currentView == ViewSettings {
		content = m.renderSettings()
	}
	return m.renderHeader() + "\n" +
		content + "\n" +
		m.renderStatusBar() + "\n" +
		m.renderBottomLine()
}

// startFetch kicks off a fetch for the current service and date. The
// sequence number makes responses from superseded fetches no-ops.
func (m *Model) startFetch() tea.Cmd {
	m.logs.fetchSeq++
	seq := m.logs.fetchSeq
	m.logs.fetching = true
	m.logs.fetchErr = nil
	m.day = viewlink.View{Date: m.linkDate}.ResolveDate(time.Now())

	src, err := m.newSource(m.service.Endpoint)
	if err != nil {
		err = fmt.Errorf("open source for %s: %w", m.service.Name, err)
		return func() tea.Msg { return logsFailedMsg{seq: seq, err: err} }
	}

	ctx := m.ctx
	timeout := m.cfg.SourceTimeout
	service := m.service.Name
	day := m.day
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		fetchCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		entries, err := src.Fetch(fetchCtx, service, day)
		if err != nil {
			return logsFailedMsg{seq: seq, err: err}
		}
		return logsFetchedMsg{seq: seq, entries: entries}
	})
}

// startExplain opens the explanation modal and asks the AI about the
// entry. Closing the modal invalidates the sequence, so a late answer
// is dropped instead of reopening it.
func (m *Model) startExplain(entry logsource.Entry) tea.Cmd {
	m.explainSeq++
	seq := m.explainSeq
	m.explaining = true
	m.modal = newExplainModal(m, entry)

	explainer := m.newExplainer()
	ctx := m.ctx
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		text, err := explainer.Explain(ctx, entry)
		if err != nil {
			return explainFailedMsg{seq: seq, err: err}
		}
		return explainedMsg{seq: seq, text: text}
	})
}

// scheduleRefresh arms the next auto refresh tick.
func (m *Model) scheduleRefresh() tea.Cmd {
	seq := m.refreshSeq
	return tea.Tick(m.cfg.RefreshEvery, func(time.Time) tea.Msg {
		return refreshTickMsg{seq: seq}
	})
}

// setNotice shows a transient message on the bottom line. The returned
// command expires it; a newer notice wins over a pending expiry.
func (m *Model) setNotice(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.notice = notice{text: text, kind: kind}
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// copyToClipboard writes text to the system clipboard off the update
// loop and reports the outcome.
func copyToClipboard(label, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{label: label, err: clipboard.WriteAll(text)}
	}
}

// dayIsToday reports whether the current selection follows the clock.
func (m Model) dayIsToday() bool {
	date := strings.TrimSpace(m.linkDate)
	if date == "" || strings.EqualFold(date, viewlink.Today) {
		return true
	}
	return date == time.Now().UTC().Format(logsource.DateLayout)
}

// dayLabel renders the selected date for the header.
func (m Model) dayLabel() string {
	day := m.day.Format(logsource.DateLayout)
	if m.dayIsToday() {
		return day + " (today)"
	}
	return day
}

// fitModal resizes modals that keep a viewport when the terminal
// changes size.
func (m *Model) fitModal() {
	switch mod := m.modal.(type) {
	case *detailModal:
		mod.fit(m)
	case *explainModal:
		mod.fit(m)
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	return err
}
