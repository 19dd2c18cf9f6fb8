package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"tidy-planner/internal/settings"
	"tidy-planner/pkg/response"
)

var (
	errInvalidPurpose   = errors.New("purpose must be move_fast, move_value, cleanup or legacy_hidden")
	errInvalidThreshold = errors.New("smallItemThreshold must be low, default or high")
)

type unknownTagError struct {
	tag string
}

func (e unknownTagError) Error() string {
	return fmt.Sprintf("unknown exit tag %q in offsets", e.tag)
}

func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, settings.ErrInvalidGoalDate):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
