package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/catorch/aegis/internal/service"
)

// ReportRequest is the payload of the task report endpoint.
type ReportRequest struct {
	ListIDs  []string `json:"list_ids" binding:"required,min=1"`
	Subtasks bool     `json:"subtasks"`
}

type ReportHandler struct {
	Reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// BuildTaskReport renders the requested lists into an xlsx attachment.
func (h *ReportHandler) BuildTaskReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.Reports.BuildTaskReport(c.Request.Context(), req.ListIDs, req.Subtasks)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("tasks-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}
