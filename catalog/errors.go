package catalog

import "fmt"

// UnknownIDError reports a lookup against an id no catalog carries. Callers
// reject the mutation instead of letting the selection price at zero.
type UnknownIDError struct {
	Kind string
	ID   string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown %s id: %q", e.Kind, e.ID)
}
