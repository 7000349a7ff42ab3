package http

import (
	"github.com/gin-gonic/gin"

	"gantt-task-board/pkg/response"
)

// CreateSession godoc
// @Summary     Create a board session
// @Description Loads the configured source workbook into a fresh session and returns its canonical table.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request - source workbook fails schema checks"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CreateSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Table godoc
// @Summary     Get the canonical table
// @Description Returns the session's current normalized task rows.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} tableResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/tasks [GET]
func (h *handler) Table(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Table(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Table: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTableResp(output))
}

// ReplaceRows godoc
// @Summary     Replace the table
// @Description Replaces the whole table with edited rows and returns the renormalized result. A schema failure leaves the previous table intact.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body replaceRowsReq true "Edited rows"
// @Success     200 {object} tableResp
// @Failure     400 {object} response.Resp "Bad Request - missing required columns"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/tasks [PUT]
func (h *handler) ReplaceRows(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceRowsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ReplaceRows(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ReplaceRows: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTableResp(output))
}

// DeleteRow godoc
// @Summary     Delete a row
// @Description Removes one row by its canonical table index and renormalizes the remainder.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       id    path string true "Session ID"
// @Param       index path int    true "Canonical row index"
// @Success     200 {object} tableResp
// @Failure     400 {object} response.Resp "Bad Request - index out of range"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/tasks/{index} [DELETE]
func (h *handler) DeleteRow(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processDeleteRowReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DeleteRow(ctx, c.Param("id"), index)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteRow: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTableResp(output))
}

// Reload godoc
// @Summary     Reload the source workbook
// @Description Re-reads the configured source workbook into the session, discarding edits.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} tableResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Reload(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Reload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTableResp(output))
}

// Upload godoc
// @Summary     Upload a workbook
// @Description Replaces the session's table with the uploaded workbook's rows. The uploaded file name drives the export name afterwards.
// @Tags        Gantt
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path     string true "Session ID"
// @Param       file formData file   true "Workbook (.xlsx)"
// @Success     200 {object} tableResp
// @Failure     400 {object} response.Resp "Bad Request - missing file or schema failure"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/upload [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, f, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer f.Close()

	output, err := h.uc.Upload(ctx, c.Param("id"), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTableResp(output))
}

// Export godoc
// @Summary     Export the edited table
// @Description Writes the current table to a new workbook named after the source with an "_updated" suffix and returns the file name.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} exportResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Export(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExportResp(output))
}

// Scene godoc
// @Summary     Get the chart scene
// @Description Returns the render-ready scene: bars, overlays, lock markers, connectors, weekend bands, legend and axis ranges.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sceneResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/scene [GET]
func (h *handler) Scene(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Scene(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Scene: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSceneResp(output))
}

// ToggleLegend godoc
// @Summary     Toggle a legend group
// @Description Flips one legend group's visibility for the session. Hidden groups persist across rebuilds.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Session ID"
// @Param       body body toggleLegendReq true "Group key, e.g. cat:Alpha or status:Done"
// @Success     200 {object} toggleLegendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/sessions/{id}/legend/toggle [POST]
func (h *handler) ToggleLegend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleLegendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleLegend(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleLegend: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newToggleLegendResp(output))
}
