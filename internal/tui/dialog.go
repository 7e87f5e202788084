package tui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/driftline/erdreq/internal/domain"
)

// dialogWidth is the inner content width of the request dialog.
const dialogWidth = 46

// Requester submits ERD requests to the diagram service. The concrete
// implementation is api.Client; tests substitute their own.
type Requester interface {
	RequestERD(ctx context.Context, requesterEmail string, source domain.SourceInfo) error
}

// erdDoneMsg reports a successful submission for the stamped session.
type erdDoneMsg struct {
	generation int
}

// erdFailedMsg reports a failed submission for the stamped session.
type erdFailedMsg struct {
	generation int
	err        error
}

// DialogModel is the "Request ERD" modal. It gates rendering on an
// open/closed flag, owns the submission status, performs the network
// request, and composes the title, close hint, and form.
type DialogModel struct {
	requester Requester
	ctx       context.Context

	open   bool
	status domain.RequestStatus
	source domain.SourceInfo
	form   FormModel

	// generation stamps each open session. A request completing after
	// the dialog was closed or reopened carries a stale stamp and its
	// result is discarded instead of flipping the status of a session
	// it does not belong to.
	generation int

	width  int
	height int
}

// NewDialogModel creates a closed dialog bound to a requester.
func NewDialogModel(ctx context.Context, requester Requester) DialogModel {
	return DialogModel{
		requester: requester,
		ctx:       ctx,
		form:      NewFormModel(dialogWidth),
	}
}

// Open shows the dialog for the given source. Status and form state are
// reset, so a closed-and-reopened dialog always starts fresh.
func (m DialogModel) Open(source domain.SourceInfo) (DialogModel, tea.Cmd) {
	m.open = true
	m.source = source
	m.status = domain.StatusUnset
	m.generation++
	m.form = m.form.Reset()
	return m, nil
}

// IsOpen reports whether the dialog is currently shown.
func (m DialogModel) IsOpen() bool {
	return m.open
}

// Status returns the submission status of the current session.
func (m DialogModel) Status() domain.RequestStatus {
	return m.status
}

// close dismisses the dialog and notifies the parent exactly once.
func (m DialogModel) close() (DialogModel, tea.Cmd) {
	m.open = false
	return m, func() tea.Msg {
		return DialogClosedMsg{}
	}
}

// Update handles dialog messages. A closed dialog ignores everything.
func (m DialogModel) Update(msg tea.Msg) (DialogModel, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.close()
		}

	case submitDraftMsg:
		// Only a fresh session may submit. A settled status (success or
		// error) is reset solely by closing and reopening the dialog.
		if m.status != domain.StatusUnset {
			return m, nil
		}
		m.status = domain.StatusLoading
		var formCmd tea.Cmd
		m.form, formCmd = m.form.withStatus(domain.StatusLoading)
		return m, tea.Batch(formCmd, m.requestERD(m.generation, msg.email))

	case erdDoneMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.status = domain.StatusSuccess
		m.form, _ = m.form.withStatus(domain.StatusSuccess)
		return m, nil

	case erdFailedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		log.Printf("request erd for %s: %v", m.source.Name, msg.err)
		m.status = domain.StatusError
		m.form, _ = m.form.withStatus(domain.StatusError)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// requestERD creates a command that performs the POST and reports the
// outcome stamped with the session generation.
func (m DialogModel) requestERD(generation int, email string) tea.Cmd {
	requester := m.requester
	ctx := m.ctx
	source := m.source
	return func() tea.Msg {
		if err := requester.RequestERD(ctx, email, source); err != nil {
			return erdFailedMsg{generation: generation, err: err}
		}
		return erdDoneMsg{generation: generation}
	}
}

// View renders the dialog centered in the window. A closed dialog
// produces no output.
func (m DialogModel) View() string {
	if !m.open {
		return ""
	}

	title := TitleStyle.Render("Request ERD: " + m.source.Name)
	hint := HelpStyle.Render("esc to close")

	box := DialogBoxStyle.Width(dialogWidth + 4).Render(
		title + "\n" + m.form.View() + "\n" + hint,
	)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
