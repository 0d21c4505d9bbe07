// Package tui is the interactive Bubble Tea view over a todo.List.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts a todo.Item to bubbles/list.Item. pos is the item's
// index in the backing todo.List as of the last sync.
type listItem struct {
	item todo.Item
	pos  int
}

func (i listItem) FilterValue() string { return i.item.Description() }

type keyMap struct {
	Toggle, Remove, Add, AllDone, Quit key.Binding
}

var keys = keyMap{
	Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Remove:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	AllDone: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all done")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

// Model is the Bubble Tea model. The todo.List is shared, so edits made
// here are visible to the caller once the program exits.
type Model struct {
	todos   *todo.List
	list    list.Model
	changed bool

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	err           error // last list operation error, shown in the status line
	width, height int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	text := it.item.Description()
	if it.item.IsDone() {
		text = t.DoneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, ui.Box(it.item), text)
}

// New builds the model for todos.
func New(todos *todo.List) Model {
	l := list.New(toListItems(todos), itemDelegate{}, 0, 0)

	t := ui.Current()
	l.Title = ui.Header(todos)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	extra := func() []key.Binding { return []key.Binding{keys.Toggle, keys.Remove, keys.Add, keys.AllDone} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	return Model{todos: todos, list: l, ti: ti, width: 80, height: 24}
}

func toListItems(todos *todo.List) []list.Item {
	out := make([]list.Item, 0, todos.Size())
	for i, it := range todos.All() {
		out = append(out, listItem{item: it, pos: i})
	}
	return out
}

// Changed reports whether the list was edited during the session.
func (m Model) Changed() bool { return m.changed }

// Err is the last failed list operation, if any.
func (m Model) Err() error { return m.err }

// Run starts the program over todos and reports whether anything changed.
func Run(todos *todo.List, opts ...tea.ProgramOption) (bool, error) {
	p := tea.NewProgram(New(todos), opts...)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.changed, nil
}

// sync rebuilds the widget from the backing list after a mutation.
func (m *Model) sync() tea.Cmd {
	m.changed = true
	m.list.Title = ui.Header(m.todos)
	return m.list.SetItems(toListItems(m.todos))
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	// add mode
	if m.adding {
		return m.updateAdding(msg)
	}

	// while typing a filter every key belongs to the list
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Quit):
			if km.String() == "esc" && m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit

		case key.Matches(km, keys.Toggle):
			sel, ok := m.selected()
			if !ok {
				return m, nil
			}
			if sel.item.IsDone() {
				m.err = m.todos.MarkUndoneAt(sel.pos)
			} else {
				m.err = m.todos.MarkDoneAt(sel.pos)
			}
			cmd := m.sync()
			return m, cmd

		case key.Matches(km, keys.Remove):
			sel, ok := m.selected()
			if !ok {
				return m, nil
			}
			_, m.err = m.todos.RemoveAt(sel.pos)
			cmd := m.sync()
			return m, cmd

		case key.Matches(km, keys.AllDone):
			m.todos.MarkAllDone()
			cmd := m.sync()
			return m, cmd

		case key.Matches(km, keys.Add):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			cmd := m.ti.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.err = m.todos.Add(todo.New(title))
			m.ti.SetValue("")
			m.ti.Blur()
			m.adding = false
			cmd := m.sync()
			if m.list.FilterState() == list.Unfiltered {
				m.list.Select(m.todos.Size() - 1)
			}
			return m, cmd
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	t := ui.Current()
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.err != nil {
		content += "\n" + t.Error.Render(m.err.Error())
	}
	if m.adding {
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add new item"
		if m.addErr != "" {
			title += " - " + t.Error.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.Panel([]string{content})
}
