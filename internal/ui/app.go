package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wordbook/internal/corpus"
	"github.com/five82/wordbook/internal/layout"
	"github.com/five82/wordbook/internal/prefs"
	"github.com/five82/wordbook/internal/search"
	"github.com/five82/wordbook/internal/words"
)

// View represents the current active view.
type View int

const (
	ViewLetters View = iota
	ViewWords
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Corpus       corpus.Corpus
	Sampler      *words.Sampler
	Opener       search.Opener // launches search URLs; nil uses search.Browser
	Copier       search.Opener // copies search URLs; nil uses search.Clipboard
	SearchPrefix string
	GridColumns  int
	ThemeName    string
	PrefsPath    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	words        []string
	counts       map[string]int
	sampler      *words.Sampler
	opener       search.Opener
	copier       search.Opener
	searchPrefix string
	gridColumns  int
	prefsPath    string

	// UI state
	keys        keyMap
	help        help.Model
	theme       Theme
	layout      layout.Toggle
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Letters state
	letters        []string
	letterCursor   int
	letterViewport viewport.Model

	// Words state
	letter     string
	sample     []string
	wordCursor int

	// Footer status
	status      string
	statusIsErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sampler := opts.Sampler
	if sampler == nil {
		sampler = words.NewSampler(nil)
	}

	opener := opts.Opener
	if opener == nil {
		opener = search.Browser{}
	}
	copier := opts.Copier
	if copier == nil {
		copier = search.Clipboard{}
	}

	gridColumns := opts.GridColumns
	if gridColumns < 1 {
		gridColumns = layout.DefaultGridColumns
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	all := opts.Corpus.Words()
	letters := words.Letters()
	counts := make(map[string]int, len(letters))
	for _, l := range letters {
		counts[l] = words.Count(all, l)
	}

	return Model{
		ctx:          ctx,
		words:        all,
		counts:       counts,
		sampler:      sampler,
		opener:       opener,
		copier:       copier,
		searchPrefix: opts.SearchPrefix,
		gridColumns:  gridColumns,
		prefsPath:    prefsPath,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		theme:        GetTheme(opts.ThemeName),
		currentView:  ViewLetters,
		letters:      letters,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.letterViewport = viewport.New(msg.Width, contentHeight(msg.Height))
		}
		m.ready = true
		m.help.Width = msg.Width
		m.updateLetterViewport()
		return m, nil

	case openedMsg:
		m.handleOpened(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Printf("save prefs: %v", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLayout):
		m.toggleLayout()
		return m, nil
	}

	switch m.currentView {
	case ViewLetters:
		return m.handleLettersKey(msg)
	case ViewWords:
		return m.handleWordsKey(msg)
	}
	return m, nil
}

// toggleLayout switches the letter arrangement. The cursor keeps pointing
// at the same letter.
func (m *Model) toggleLayout() {
	m.layout.Toggle()
	log.Printf("layout switched to %s", m.layout.Mode())
	m.updateLetterViewport()
}

// selectLetter draws a fresh sample for letter and shows it.
func (m *Model) selectLetter(letter string) {
	m.letter = letter
	m.sample = m.sampler.Sample(m.words, letter)
	m.wordCursor = 0
	m.currentView = ViewWords
	m.clearStatus()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusIsErr = false
}

// renderMain renders header, content and footer.
func (m Model) renderMain() string {
	var content string
	switch m.currentView {
	case ViewLetters:
		content = m.renderLetters()
	case ViewWords:
		content = m.renderWords()
	}

	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight(m.height)).
		MaxHeight(contentHeight(m.height)).
		Render(content)

	return strings.Join([]string{m.renderHeader(), content, m.renderFooter()}, "\n")
}

// Messages

// openedMsg reports the outcome of handing a URL to an Opener.
type openedMsg struct {
	action string
	url    string
	err    error
}

// Commands

func openCmd(o search.Opener, action, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{action: action, url: url, err: o.Open(url)}
	}
}

func (m *Model) handleOpened(msg openedMsg) {
	if msg.err != nil {
		log.Printf("%s %s: %v", msg.action, msg.url, msg.err)
		m.setStatus(msg.err.Error(), true)
		return
	}
	log.Printf("%s %s", msg.action, msg.url)
	switch msg.action {
	case actionCopy:
		m.setStatus("Copied "+msg.url, false)
	default:
		m.setStatus("Opened "+msg.url, false)
	}
}

const (
	actionOpen = "open"
	actionCopy = "copy"
)

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
