// Package tui provides Bubble Tea models for the interactive TUI.
package tui

import "github.com/driftline/erdreq/internal/domain"

// OpenDialogMsg is emitted when the user asks to request an ERD for a source.
type OpenDialogMsg struct {
	Source domain.SourceInfo
}

// DialogClosedMsg is emitted when the request dialog is dismissed.
type DialogClosedMsg struct{}

// ErrorMsg is emitted when an error occurs.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}
