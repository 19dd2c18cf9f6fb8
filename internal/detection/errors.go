package detection

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrImageEncoding indicates the photo could not be prepared for upload
	ErrImageEncoding = errors.New("detection: image encoding failed")
	// ErrSchemaInvalid indicates the remote reply did not match the detection schema
	ErrSchemaInvalid = errors.New("detection: remote reply did not match schema")
)

// CoolingDownError is returned while a previous 429 cooldown is active.
type CoolingDownError struct {
	Remaining time.Duration
}

func (e *CoolingDownError) Error() string {
	return fmt.Sprintf("detection: remote detector cooling down for %s", e.Remaining.Round(time.Second))
}
