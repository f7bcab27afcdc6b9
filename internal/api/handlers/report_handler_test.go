package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/catorch/aegis/internal/service"
)

func newReportRouter(click *service.ClickUpService) *gin.Engine {
	h := NewReportHandler(service.NewReportService(click, nil))
	r := gin.New()
	r.POST("/api/v1/reports/tasks", h.BuildTaskReport)
	return r
}

func TestBuildTaskReport_RequiresListIDs(t *testing.T) {
	r := newReportRouter(newBackend(t, 200, `{"tasks":[],"last_page":true}`))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/tasks", strings.NewReader(`{"list_ids":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuildTaskReport_ReturnsWorkbookAttachment(t *testing.T) {
	backend := newBackend(t, 200, `{"tasks":[{"id":"t1","name":"First","status":{"status":"to do"}}],"last_page":true}`)
	r := newReportRouter(backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/tasks", strings.NewReader(`{"list_ids":["l1"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tasks")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "First", rows[1][1])
}

func TestBuildTaskReport_UpstreamFailureIsBadGateway(t *testing.T) {
	r := newReportRouter(newBackend(t, 500, `{"err": "Internal error"}`))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/tasks", strings.NewReader(`{"list_ids":["l1"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
