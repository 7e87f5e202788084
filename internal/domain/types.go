// Package domain defines the normalized domain types for ERD requests.
// These types represent the core concepts independent of the diagram
// service's HTTP API structure.
package domain

import "regexp"

// SourceInfo identifies the data source an ERD request pertains to.
// It is supplied by configuration and passed through to the diagram
// service unmodified.
type SourceInfo struct {
	URL          string // Documentation or connector URL for the source
	Name         string // Human-readable source name (e.g., "Postgres")
	DefinitionID string // Stable source definition identifier
}

// RequestStatus tracks the lifecycle of a single ERD submission.
type RequestStatus int

const (
	StatusUnset RequestStatus = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// String returns a human-readable name for the status.
func (s RequestStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

// emailPattern is a permissive single-@ shape check, not full RFC
// validation: something before the @, something after it, and a dot in
// the domain part. Whitespace is rejected everywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmailMessage is the fixed message shown when an email draft fails
// the shape check.
const ValidEmailMessage = "Please enter a valid email address."

// ValidateEmail checks the draft against the permissive email pattern.
// It returns an empty string for a valid draft and ValidEmailMessage
// otherwise.
func ValidateEmail(draft string) string {
	if emailPattern.MatchString(draft) {
		return ""
	}
	return ValidEmailMessage
}
