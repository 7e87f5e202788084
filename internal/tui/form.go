package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/driftline/erdreq/internal/domain"
)

const (
	// debounceInterval is the quiet period after the last keystroke
	// before the draft is validated.
	debounceInterval = 800 * time.Millisecond

	// defaultDraft pre-fills the email field with an example value.
	defaultDraft = "name@company.com"

	submitLabel  = "Request ERD"
	loadingLabel = "Requesting..."
)

// validateDraftMsg fires when a debounce window closes. The seq stamp
// identifies the keystroke that scheduled it; only the latest survives.
type validateDraftMsg struct {
	seq int
}

// submitDraftMsg carries the draft up to the dialog when the user submits.
type submitDraftMsg struct {
	email string
}

// FormModel collects and locally validates the requester email. It renders
// one of three mutually exclusive views based on the submission status
// owned by the parent dialog: the form, a two-line success confirmation,
// or a single error line.
type FormModel struct {
	input         textinput.Model
	spinner       spinner.Model
	validationErr string
	validateSeq   int
	status        domain.RequestStatus
	width         int
}

// NewFormModel creates a form with the email field focused and pre-filled.
func NewFormModel(width int) FormModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 254
	ti.Width = width - len(ti.Prompt) - 1
	ti.SetValue(defaultDraft)
	ti.CursorEnd()
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

	return FormModel{
		input:   ti,
		spinner: sp,
		width:   width,
	}
}

// Reset returns the form to its initial state: default draft, no
// validation message, unset status. Any pending debounce check is
// invalidated by bumping the sequence stamp.
func (m FormModel) Reset() FormModel {
	m.input.SetValue(defaultDraft)
	m.input.CursorEnd()
	m.input.Focus()
	m.validationErr = ""
	m.validateSeq++
	m.status = domain.StatusUnset
	return m
}

// Draft returns the current email draft.
func (m FormModel) Draft() string {
	return m.input.Value()
}

// ValidationError returns the current validation message, empty if the
// draft is (or was last seen) valid.
func (m FormModel) ValidationError() string {
	return m.validationErr
}

// withStatus applies the parent-owned submission status. Entering the
// loading state blurs the input and starts the spinner.
func (m FormModel) withStatus(status domain.RequestStatus) (FormModel, tea.Cmd) {
	m.status = status
	if status == domain.StatusLoading {
		m.input.Blur()
		return m, m.spinner.Tick
	}
	return m, nil
}

// Update handles form messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.status == domain.StatusLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case validateDraftMsg:
		// A newer keystroke rescheduled the check; drop the stale one.
		if msg.seq != m.validateSeq {
			return m, nil
		}
		m.validationErr = domain.ValidateEmail(m.input.Value())
		return m, nil

	case tea.KeyMsg:
		// The form is only interactive before a submission settles:
		// input and submit are disabled while the request is in flight,
		// and once the success or error message has replaced the form
		// there is nothing left to type into or submit. Closing and
		// reopening the dialog is the only way to start over.
		if m.status != domain.StatusUnset {
			return m, nil
		}

		if msg.Type == tea.KeyEnter {
			email := m.input.Value()
			// The field is required; an empty draft never submits.
			if strings.TrimSpace(email) == "" {
				return m, nil
			}
			// Validation is advisory: the current draft is submitted
			// even while a validation message is showing.
			return m, func() tea.Msg {
				return submitDraftMsg{email: email}
			}
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		if m.input.Value() != before {
			// Draft changed: discard any pending check and schedule a
			// fresh one for the end of the quiet period.
			m.validateSeq++
			seq := m.validateSeq
			return m, tea.Batch(cmd, tea.Tick(debounceInterval, func(time.Time) tea.Msg {
				return validateDraftMsg{seq: seq}
			}))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the success confirmation, the error line, or the form.
func (m FormModel) View() string {
	switch m.status {
	case domain.StatusSuccess:
		return SuccessStyle.Render("Your ERD request has been sent.") + "\n" +
			wordwrap.String("We'll email you once it's ready.", m.width)

	case domain.StatusError:
		return ErrorStyle.Render(wordwrap.String("Something went wrong. Close and try again.", m.width))
	}

	input := m.input
	if m.validationErr != "" {
		input.TextStyle = ValidationStyle
	}

	var b strings.Builder
	b.WriteString(DialogLabelStyle.Render("Email address"))
	b.WriteString("\n")
	b.WriteString(input.View())
	b.WriteString("\n")
	if m.validationErr != "" {
		b.WriteString(ValidationStyle.Render(wordwrap.String(m.validationErr, m.width)))
	}
	b.WriteString("\n\n")

	if m.status == domain.StatusLoading {
		b.WriteString(m.spinner.View() + " " + ButtonDisabledStyle.Render(loadingLabel))
	} else {
		b.WriteString(ButtonStyle.Render(submitLabel))
	}

	return b.String()
}
