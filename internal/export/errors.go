package export

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyListName = errors.New("list name is empty")
	ErrUnknownSink   = errors.New("unknown export sink")
)

// PartialFailureError reports an import that stopped after Imported of Attempted tasks.
type PartialFailureError struct {
	Imported  int
	Attempted int
	FailedIDs []string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("imported %d of %d tasks: %v", e.Imported, e.Attempted, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }
