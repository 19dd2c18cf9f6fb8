package http

import (
	"github.com/gin-gonic/gin"

	"tidy-planner/pkg/response"
)

// Get godoc
// @Summary     Get intent settings
// @Description Returns the current planning settings.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	response.OK(c, h.newSettingsResp(h.store.Snapshot()))
}

// Update godoc
// @Summary     Update intent settings
// @Description Applies a partial update and persists the result. goalDate accepts ISO dates or phrases like "in 2 weeks".
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} settingsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.store.Update(ctx, req.apply())
	if err != nil {
		h.l.Errorf(ctx, "store.Update: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSettingsResp(updated))
}
