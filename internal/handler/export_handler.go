package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/theater-scheduler/internal/models"
	"github.com/noah-isme/theater-scheduler/internal/service"
	appErrors "github.com/noah-isme/theater-scheduler/pkg/errors"
	"github.com/noah-isme/theater-scheduler/pkg/response"
)

type scheduleExportOrchestrator interface {
	RequestExport(ctx context.Context, scenarioID string, format models.ExportFormat) (*models.ExportJob, error)
	Status(ctx context.Context, jobID string) (*models.ExportJob, error)
}

type exportDownloadResolver interface {
	ResolveDownload(ctx context.Context, token string) (*service.ExportDownload, error)
}

// ExportHandler exposes the async schedule-export pipeline: queue a render,
// poll its status, and download the signed file once ready.
type ExportHandler struct {
	exports  scheduleExportOrchestrator
	download exportDownloadResolver
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports scheduleExportOrchestrator, download exportDownloadResolver) *ExportHandler {
	return &ExportHandler{exports: exports, download: download}
}

type exportRequestBody struct {
	Format string `json:"format" binding:"required"`
}

// RequestExport godoc
// @Summary Queue a schedule export render
// @Tags Export
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param payload body exportRequestBody true "Export format"
// @Success 202 {object} response.Envelope
// @Router /scenarios/{id}/export [post]
func (h *ExportHandler) RequestExport(c *gin.Context) {
	var body exportRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}
	format := models.ExportFormat(body.Format)
	if format != models.ExportFormatCSV && format != models.ExportFormatPDF {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	job, err := h.exports.RequestExport(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, job, nil)
}

// ExportStatus godoc
// @Summary Get the status of a queued schedule export
// @Tags Export
// @Produce json
// @Param jobId path string true "Export job ID"
// @Success 200 {object} response.Envelope
// @Router /export/{jobId}/status [get]
func (h *ExportHandler) ExportStatus(c *gin.Context) {
	job, err := h.exports.Status(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Download godoc
// @Summary Download a rendered export via signed token
// @Tags Export
// @Produce octet-stream
// @Param token path string true "Signed token"
// @Success 200 {file} binary
// @Router /export/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	download, err := h.download.ResolveDownload(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.File.Close() //nolint:errcheck
	info, err := download.File.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read export metadata"))
		return
	}
	contentType := "text/csv"
	if download.Format == models.ExportFormatPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, info.Size(), contentType, download.File, nil)
}
