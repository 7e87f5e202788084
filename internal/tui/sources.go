package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/driftline/erdreq/internal/domain"
)

// sourceItem wraps a domain.SourceInfo for use in bubbles/list.
type sourceItem struct {
	source domain.SourceInfo
}

func (i sourceItem) FilterValue() string {
	return i.source.Name
}

func (i sourceItem) Title() string {
	return i.source.Name
}

func (i sourceItem) Description() string {
	if i.source.URL == "" {
		return i.source.DefinitionID
	}
	return i.source.URL
}

// sourceDelegate is a custom item delegate for source items.
type sourceDelegate struct{}

func (d sourceDelegate) Height() int                             { return 2 }
func (d sourceDelegate) Spacing() int                            { return 1 }
func (d sourceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d sourceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(sourceItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())
	desc := i.Description()

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> "+str))
		fmt.Fprint(w, "\n  "+NormalItemStyle.Render(desc))
	} else {
		fmt.Fprint(w, NormalItemStyle.Render("  "+str))
		fmt.Fprint(w, "\n  "+HelpStyle.Render(desc))
	}
}

// SourcesModel displays the source catalog for the user to pick from.
// Selecting a source opens the request dialog; `o` opens its docs URL
// in the browser.
type SourcesModel struct {
	list   list.Model
	keymap KeyMap
	help   help.Model
	err    error
}

// NewSourcesModel creates a picker over the given catalog.
func NewSourcesModel(sources []domain.SourceInfo) SourcesModel {
	items := make([]list.Item, len(sources))
	for i, s := range sources {
		items[i] = sourceItem{source: s}
	}

	l := list.New(items, sourceDelegate{}, 80, 20)
	l.Title = "Select a Source"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = TitleStyle

	return SourcesModel{
		list:   l,
		keymap: DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m SourcesModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages and updates the picker state.
func (m SourcesModel) Update(msg tea.Msg) (SourcesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		// Let the list's filter input consume keys while filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, func() tea.Msg {
				return QuitMsg{}
			}

		case key.Matches(msg, m.keymap.Request):
			if item, ok := m.list.SelectedItem().(sourceItem); ok {
				return m, func() tea.Msg {
					return OpenDialogMsg{Source: item.source}
				}
			}

		case key.Matches(msg, m.keymap.Open):
			if item, ok := m.list.SelectedItem().(sourceItem); ok && item.source.URL != "" {
				url := item.source.URL
				return m, func() tea.Msg {
					if err := browser.OpenURL(url); err != nil {
						return ErrorMsg{Err: fmt.Errorf("open %s: %w", url, err)}
					}
					return nil
				}
			}

		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker with a help line underneath.
func (m SourcesModel) View() string {
	view := m.list.View() + "\n" + HelpStyle.Render(m.help.View(m.keymap))

	if m.err != nil {
		view += ErrorStyle.Render(fmt.Sprintf("\nError: %v", m.err))
	}

	return view
}
