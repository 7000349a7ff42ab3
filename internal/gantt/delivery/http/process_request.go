package http

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"gantt-task-board/internal/gantt"
	pkgErrors "gantt-task-board/pkg/errors"
)

// processReplaceRowsReq binds and validates the full-table edit body.
func (h *handler) processReplaceRowsReq(c *gin.Context) (replaceRowsReq, error) {
	var req replaceRowsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processToggleLegendReq binds and validates the legend toggle body.
func (h *handler) processToggleLegendReq(c *gin.Context) (toggleLegendReq, error) {
	var req toggleLegendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDeleteRowReq parses the canonical row index from the URI.
func (h *handler) processDeleteRowReq(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, pkgErrors.NewHTTPError(400, "row index must be an integer")
	}
	return index, nil
}

// processUploadReq opens the uploaded workbook from the multipart form.
// The caller owns closing the returned file.
func (h *handler) processUploadReq(c *gin.Context) (gantt.UploadInput, multipart.File, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return gantt.UploadInput{}, nil, pkgErrors.NewHTTPError(400, "multipart field \"file\" is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return gantt.UploadInput{}, nil, err
	}

	return gantt.UploadInput{
		Reader:   f,
		FileName: fileHeader.Filename,
	}, f, nil
}
