package http

import (
	"github.com/gin-gonic/gin"

	"tidy-planner/pkg/response"
)

// Generate godoc
// @Summary     Generate a disposal plan
// @Description Turns a photo or caller-supplied detections into an ordered list of disposal tasks. Remote enrichment is attempted only when allowed and consented.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Photo or detections"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Export godoc
// @Summary     Export tasks to a reminders list
// @Description Writes the selected tasks into the configured export sink. Partial failures are reported through failed_ids.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Tasks to export"
// @Success     200  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Export sink not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newExportResp(output))
}
