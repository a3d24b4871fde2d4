package scoring

import "fmt"

// InsufficientInputError reports that scoring was invoked without enough
// input to produce a meaningful result: no requirements, or no resume text.
type InsufficientInputError struct {
	Message string
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("insufficient input for scoring: %s", e.Message)
}
