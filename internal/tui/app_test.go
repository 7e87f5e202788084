package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(sourceFlag string) AppModel {
	return NewAppModel(context.Background(), &mockRequester{}, testCatalog(), sourceFlag)
}

func TestApp_StartsOnSourcePicker(t *testing.T) {
	m := newTestApp("")
	m, _ = updateApp(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.False(t, m.dialog.IsOpen())
	assert.Contains(t, m.View(), "Select a Source")
}

// updateApp unwraps the tea.Model returned by AppModel.Update.
func updateApp(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestApp_OpenDialogMsgShowsDialog(t *testing.T) {
	m := newTestApp("")

	m, _ = updateApp(m, OpenDialogMsg{Source: testCatalog()[0]})

	assert.True(t, m.dialog.IsOpen())
	assert.Contains(t, m.View(), "Request ERD: Postgres")
	assert.NotContains(t, m.View(), "Select a Source")
}

func TestApp_DialogClosedReturnsToPicker(t *testing.T) {
	m := newTestApp("")
	m, _ = updateApp(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = updateApp(m, OpenDialogMsg{Source: testCatalog()[0]})

	m, _ = updateApp(m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := updateApp(m, DialogClosedMsg{})

	assert.Nil(t, cmd)
	assert.False(t, m.dialog.IsOpen())
	assert.Contains(t, m.View(), "Select a Source")
}

func TestApp_DialogClosedInDialogOnlyModeQuits(t *testing.T) {
	m := newTestApp("Postgres")

	_, cmd := updateApp(m, DialogClosedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_InitWithSourceFlagOpensDialog(t *testing.T) {
	m := newTestApp("Postgres")

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	open, ok := msg.(OpenDialogMsg)
	require.True(t, ok, "expected OpenDialogMsg, got %T", msg)
	assert.Equal(t, "Postgres", open.Source.Name)
}

func TestApp_InitWithUnknownSourceFlagErrors(t *testing.T) {
	m := newTestApp("Snowflake")

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok, "expected ErrorMsg, got %T", msg)
	assert.Contains(t, errMsg.Err.Error(), "Snowflake")

	m, _ = updateApp(m, errMsg)
	assert.Contains(t, m.View(), "Error:")
}

func TestApp_TransientErrorShownInlineOnPicker(t *testing.T) {
	m := newTestApp("")
	m, _ = updateApp(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	// A failure like a browser-open error must not tear down the
	// screen; the picker shows it inline.
	m, _ = updateApp(m, ErrorMsg{Err: assert.AnError})

	view := m.View()
	assert.Contains(t, view, "Select a Source")
	assert.Contains(t, view, "Error:")
}

func TestApp_QuitMsgQuits(t *testing.T) {
	m := newTestApp("")

	_, cmd := updateApp(m, QuitMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_CtrlCQuitsEverywhere(t *testing.T) {
	m := newTestApp("")

	_, cmd := updateApp(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m, _ = updateApp(m, OpenDialogMsg{Source: testCatalog()[0]})
	_, cmd = updateApp(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
