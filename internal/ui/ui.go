package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/formatter"
	"github.com/desertthunder/unitx/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	FormView
	ConfirmClearView
)

// Model represents the TUI application state.
type Model struct {
	view    ViewState
	session *compare.Session
	printer *formatter.Printer
	logger  *log.Logger
	width   int
	height  int
	list    list.Model
	form    form
	status  error
	help    help.Model
	keys    keyMap
}

type rankedData struct {
	action  string
	entries []models.Entry
}

// NewModel creates a new TUI model around an existing session.
func NewModel(session *compare.Session, printer *formatter.Printer, logger *log.Logger) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return &Model{
		view:    ListView,
		session: session,
		printer: printer,
		logger:  logger,
		list:    l,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// ViewState returns the current view state.
func (m *Model) ViewState() ViewState {
	return m.view
}

// Init renders any offers the session was started with.
func (m *Model) Init() tea.Cmd {
	if m.session.Len() == 0 {
		return nil
	}
	return emit(rankedMsg("loaded", m.session.Entries()))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		case ConfirmClearView:
			return m.handleConfirmKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	switch m.view {
	case ListView:
		m.list, cmd = m.list.Update(msg)
	case FormView:
		cmd = m.form.update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	header := styles.banner.Render("Compare & Save")

	switch m.view {
	case FormView:
		return fmt.Sprintf("%s\n%s", header, m.renderForm())
	case ConfirmClearView:
		return fmt.Sprintf("%s\n%s", header, m.renderConfirm())
	default:
		return fmt.Sprintf("%s\n%s", header, m.renderList())
	}
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgEntriesRanked:
		data := msg.data.(rankedData)
		summary := compare.Summarize(data.entries)
		m.logger.Info("ranked offers", "action", data.action, "count", summary.Count, "tied", summary.Tied)
		return m, m.list.SetItems(entryItems(data.entries, m.printer))
	case MsgSessionReset:
		m.logger.Info("cleared all offers")
		return m, m.list.SetItems(nil)
	}
	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = nil

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.add):
		return m, m.openForm(m.session.CreateProvisional(), false)
	case key.Matches(msg, m.keys.edit):
		if e, ok := m.selected(); ok {
			raw, err := m.session.Edit(e.ID)
			if err != nil {
				m.status = err
				return m, nil
			}
			return m, m.openForm(raw, true)
		}
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if e, ok := m.selected(); ok {
			entries, err := m.session.Remove(e.ID)
			if err != nil {
				m.status = err
				return m, nil
			}
			return m, emit(rankedMsg("removed", entries))
		}
		return m, nil
	case key.Matches(msg, m.keys.clear):
		if m.session.Len() > 0 {
			m.view = ConfirmClearView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ListView
		return m, nil
	case key.Matches(msg, m.keys.submit):
		return m.submit()
	case key.Matches(msg, m.keys.next):
		return m, m.form.setFocus(m.form.focus + 1)
	case key.Matches(msg, m.keys.prev):
		return m, m.form.setFocus(m.form.focus - 1)
	}

	return m, m.form.update(msg)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		m.session.Reset()
		m.view = ListView
		return m, emit(resetMsg())
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.quit):
		m.view = ListView
	}
	return m, nil
}

func (m *Model) openForm(raw models.RawEntry, editing bool) tea.Cmd {
	m.form = newForm(raw, editing)
	m.view = FormView
	if editing {
		return m.form.setFocus(fieldPrice)
	}
	return m.form.setFocus(fieldAmount)
}

// submit commits the form. Rejected offers keep the form open on the field that failed.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	raw := m.form.raw()

	entries, err := m.session.Submit(raw)
	if err != nil {
		m.logger.Warn("offer rejected", "id", raw.ID, "error", err)
		m.form.err = err

		var fieldErr *compare.FieldError
		if errors.As(err, &fieldErr) {
			return m, m.form.focusField(fieldErr.Field)
		}
		return m, nil
	}

	action := "added"
	if m.form.editing {
		action = "updated"
	}
	m.view = ListView
	return m, emit(rankedMsg(action, entries))
}

func (m *Model) selected() (models.Entry, bool) {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return models.Entry{}, false
	}
	return item.entry, true
}

func (m *Model) renderList() string {
	summary := m.session.Summary()

	var b strings.Builder
	for i, line := range m.printer.Headline(summary) {
		b.WriteString(styles.headline(summary, i, line) + "\n")
	}

	if summary.Comparable() && !summary.Tied {
		b.WriteString("\n" + styles.muted.Render("Sorted by cheapest:") + "\n")
	}
	if summary.Count > 0 {
		b.WriteString("\n" + m.list.View() + "\n")
	}
	if m.status != nil {
		b.WriteString("\n" + styles.rejected.Render(m.status.Error()) + "\n")
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.quit}
	if summary.Count > 0 {
		helpKeys = []key.Binding{m.keys.up, m.keys.down, m.keys.add, m.keys.edit, m.keys.remove, m.keys.clear, m.keys.quit}
	}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderForm() string {
	title := "Add a product"
	if m.form.editing {
		title = "Edit product"
	}

	helpKeys := []key.Binding{m.keys.next, m.keys.prev, m.keys.submit, m.keys.back}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s\n%s", styles.prompt.Render(title), m.form.view(m.printer.UnitLabel()), helpView)
}

func (m *Model) renderConfirm() string {
	question := fmt.Sprintf("Clear all %d products and start over?", m.session.Len())

	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s", styles.prompt.Render(question), helpView)
}
