package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftline/erdreq/internal/domain"
)

// AppModel is the root Bubble Tea model. It shows the source picker and
// overlays the request dialog on top of it, routing messages to whichever
// is active.
type AppModel struct {
	// Dependencies
	requester Requester
	ctx       context.Context

	// CLI flags (pre-filled values)
	sourceFlag string

	// Current state
	sources SourcesModel
	dialog  DialogModel
	catalog []domain.SourceInfo
	err     error
}

// NewAppModel creates the root model. If sourceFlag is non-empty the
// picker is skipped and the dialog opens directly for that source.
func NewAppModel(ctx context.Context, requester Requester, catalog []domain.SourceInfo, sourceFlag string) AppModel {
	return AppModel{
		requester:  requester,
		ctx:        ctx,
		sourceFlag: sourceFlag,
		catalog:    catalog,
		sources:    NewSourcesModel(catalog),
		dialog:     NewDialogModel(ctx, requester),
	}
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	if m.sourceFlag != "" {
		flag := m.sourceFlag
		catalog := m.catalog
		return func() tea.Msg {
			for _, s := range catalog {
				if s.Name == flag {
					return OpenDialogMsg{Source: s}
				}
			}
			return ErrorMsg{Err: fmt.Errorf("source '%s' not found in catalog", flag)}
		}
	}

	return m.sources.Init()
}

// Update handles messages and routes them to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var sourcesCmd, dialogCmd tea.Cmd
		m.sources, sourcesCmd = m.sources.Update(msg)
		m.dialog, dialogCmd = m.dialog.Update(msg)
		return m, tea.Batch(sourcesCmd, dialogCmd)

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ErrorMsg:
		// With no picker to fall back to, any error is fatal. Otherwise
		// the message flows through to the picker, which shows it
		// inline without tearing down the screen.
		if m.sourceFlag != "" {
			m.err = msg.Err
			return m, nil
		}

	case QuitMsg:
		return m, tea.Quit

	case OpenDialogMsg:
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Open(msg.Source)
		return m, tea.Batch(cmd, tea.WindowSize())

	case DialogClosedMsg:
		// In dialog-only mode there is no picker to fall back to.
		if m.sourceFlag != "" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.dialog.IsOpen() {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.sources, cmd = m.sources.Update(msg)
	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	// Show error if present
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err))
	}

	if m.dialog.IsOpen() {
		return m.dialog.View()
	}

	return m.sources.View()
}
