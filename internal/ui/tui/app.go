package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trail-of-forks/smtcat/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenRecords
	screenPreview
	screenValidate
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type recordItem struct {
	name string
	path string
	rel  string
	kind domain.RecordKind
}

func (r recordItem) Title() string       { return r.name }
func (r recordItem) Description() string { return r.rel }
func (r recordItem) FilterValue() string { return r.name }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	menu    list.Model
	records list.Model

	recordsKind domain.RecordKind

	corpusFound bool
	corpusRoot  string

	preview     string
	previewPath string

	running bool
	report  *domain.ValidationReport

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Logics", "Browse logic records"},
		menuItem{"Theories", "Browse theory records"},
		menuItem{"Validate", "Check every record in the corpus"},
		menuItem{"Init corpus", "Scaffold a corpus with starter records"},
		menuItem{"Quit", "Exit smtcat"},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "smtcat"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)
	menu.SetShowHelp(false)

	records := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	records.SetShowStatusBar(false)
	records.SetFilteringEnabled(true)
	records.SetShowHelp(false)

	m := model{
		theme:   t,
		deps:    deps,
		scr:     screenHome,
		menu:    menu,
		records: records,
	}

	wd, err := os.Getwd()
	if err == nil && deps.CorpusLocator != nil {
		root, findErr := deps.CorpusLocator.FindRoot(wd)
		if findErr == nil {
			m.corpusFound = true
			m.corpusRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.records.SetSize(w-4, h-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.filtering() {
				break
			}
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			m.toast = ""
			return m, nil

		case "enter":
			if m.filtering() {
				break
			}
			switch m.scr {
			case screenHome:
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				return m.openMenuItem(it)

			case screenRecords:
				it, ok := m.records.SelectedItem().(recordItem)
				if !ok {
					return m, nil
				}
				m.scr = screenPreview
				m.previewPath = it.path
				m.preview = ""
				return m, cmdPreviewRecord(it.path, it.kind)
			}

		case "esc", "b":
			if m.filtering() {
				break
			}
			switch m.scr {
			case screenPreview:
				m.scr = screenRecords
				return m, nil
			case screenRecords, screenValidate:
				m.scr = screenHome
				return m, nil
			}
		}

	case logicsLoadedMsg:
		// A load finishing after the user moved on is dropped.
		if m.scr != screenRecords || m.recordsKind != domain.RecordLogic {
			return m, nil
		}
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, newRecordItem(msg.root, r.Name, r.Path, domain.RecordLogic))
		}
		return m, m.records.SetItems(items)

	case theoriesLoadedMsg:
		if m.scr != screenRecords || m.recordsKind != domain.RecordTheory {
			return m, nil
		}
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, newRecordItem(msg.root, r.Name, r.Path, domain.RecordTheory))
		}
		return m, m.records.SetItems(items)

	case recordPreviewMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenRecords
			return m, nil
		}
		m.preview = msg.preview
		return m, nil

	case validateDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		report := msg.report
		m.report = &report
		return m, nil

	case initCorpusDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = fmt.Sprintf("Corpus initialized at %s", msg.root)
		return m, cmdRefreshCorpus(m.deps)

	case corpusRefreshedMsg:
		m.corpusFound = msg.found
		if msg.found {
			m.corpusRoot = msg.root
		}
		return m, nil
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenRecords:
		var cmd tea.Cmd
		m.records, cmd = m.records.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) openMenuItem(it menuItem) (tea.Model, tea.Cmd) {
	switch {
	case strings.EqualFold(it.title, "Quit"):
		return m, tea.Quit

	case strings.EqualFold(it.title, "Logics"):
		if !m.corpusFound {
			m.toast = "No corpus found. Use Init corpus first."
			return m, nil
		}
		m.scr = screenRecords
		m.recordsKind = domain.RecordLogic
		m.records.Title = "Logics"
		return m, tea.Batch(m.records.SetItems(nil), cmdLoadLogics(m.corpusRoot))

	case strings.EqualFold(it.title, "Theories"):
		if !m.corpusFound {
			m.toast = "No corpus found. Use Init corpus first."
			return m, nil
		}
		m.scr = screenRecords
		m.recordsKind = domain.RecordTheory
		m.records.Title = "Theories"
		return m, tea.Batch(m.records.SetItems(nil), cmdLoadTheories(m.corpusRoot))

	case strings.EqualFold(it.title, "Validate"):
		if !m.corpusFound {
			m.toast = "No corpus found. Use Init corpus first."
			return m, nil
		}
		if m.running {
			return m, nil
		}
		m.scr = screenValidate
		m.running = true
		m.report = nil
		_, cmd := startValidateAsync(m.corpusRoot, m.deps.Logger, m.deps.Debug)
		return m, cmd

	case strings.EqualFold(it.title, "Init corpus"):
		root := m.corpusRoot
		if !m.corpusFound {
			wd, err := os.Getwd()
			if err != nil {
				m.toast = "Unexpected error (see logs)"
				return m, nil
			}
			root = wd
		}
		return m, cmdInitCorpusHere(m.deps, root)
	}
	return m, nil
}

func (m model) filtering() bool {
	switch m.scr {
	case screenHome:
		return m.menu.FilterState() == list.Filtering
	case screenRecords:
		return m.records.FilterState() == list.Filtering
	}
	return false
}

func newRecordItem(root, name, path string, kind domain.RecordKind) recordItem {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return recordItem{name: name, path: path, rel: rel, kind: kind}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("smtcat") + "\n" +
		m.theme.Subtitle.Render("SMT-LIB logic and theory records: browse, validate, format") + "\n"

	var corpusBanner string
	if m.corpusFound {
		corpusBanner = m.theme.Help.Render(fmt.Sprintf("Corpus: %s", m.corpusRoot))
	} else {
		corpusBanner = m.theme.Card.Render(
			"⚠ No corpus found.\n\nUse Init corpus to scaffold one here.",
		)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Warn.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + corpusBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + toast + "\n" + help)

	case screenRecords:
		help := m.theme.Help.Render("↑/↓ navigate • enter preview • / search • esc back • q home")
		return wrap.Render(header + "\n" + corpusBanner + "\n\n" + m.theme.Card.Render(m.records.View()) + toast + "\n" + help)

	case screenPreview:
		body := m.preview
		if body == "" {
			body = "Loading…"
		}
		help := m.theme.Help.Render("esc/b back • q home")
		return wrap.Render(header + "\n" + corpusBanner + "\n\n" + m.theme.Card.Render(body) + toast + "\n" + help)

	case screenValidate:
		var body string
		switch {
		case m.running:
			body = "Validating…"
		case m.report != nil:
			body = renderReport(*m.report)
		default:
			body = "No report."
		}
		help := m.theme.Help.Render("esc/b back • q home")
		return wrap.Render(header + "\n" + corpusBanner + "\n\n" + m.theme.Card.Render(body) + toast + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
