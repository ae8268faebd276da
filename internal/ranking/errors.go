package ranking

import "fmt"

// ValidationError reports malformed caller input: a bad basket entry or an
// unknown sort key. Handlers map it to a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
