package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tidy-planner/internal/plan"
	"tidy-planner/pkg/response"
)

var (
	errMissingInput  = errors.New("image or detections is required")
	errMissingMIME   = errors.New("mime_type is required with image")
	errInvalidUnits  = errors.New("units must be normalized or pixels")
	errMissingTasks  = errors.New("tasks is required")
	errInvalidTaskID = errors.New("every task needs id and title")
)

// mapError translates use-case errors into a status code.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, plan.ErrExportDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, plan.ErrNoTasksSelected):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) writeError(c *gin.Context, err error) {
	status := h.mapError(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.ErrorStatus(c, status, err)
}
