package embedding

import "fmt"

// UnavailableError represents a failure to produce an embedding, either
// because the provider could not be constructed or because a specific
// embedding call failed.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
