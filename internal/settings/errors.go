package settings

import "errors"

var (
	ErrInvalidGoalDate = errors.New("invalid goal date")
	ErrPersist         = errors.New("failed to persist settings")
)
