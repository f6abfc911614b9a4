package model

import "fmt"

// ValidationError reports a malformed transaction at construction time.
// It is the only hard failure in the core: once a Transaction exists it is
// valid forever, so operational code never re-validates these fields.
type ValidationError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Kind, e.Field, e.Reason)
}
