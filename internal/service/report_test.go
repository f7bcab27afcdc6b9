package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/catorch/aegis/internal/model"
)

func newReportBackend(t *testing.T, pages map[string][]model.TasksResponse) *ReportService {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /list/{id}/task", func(w http.ResponseWriter, r *http.Request) {
		listPages, ok := pages[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"err": "List not found"}`))
			return
		}
		page := 0
		if p := r.URL.Query().Get("page"); p != "" {
			_ = json.Unmarshal([]byte(p), &page)
		}
		require.Less(t, page, len(listPages))
		_ = json.NewEncoder(w).Encode(listPages[page])
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	click := NewClickUpService("pk_test_token", testLogger())
	click.BaseURL = srv.URL
	return NewReportService(click, testLogger())
}

func TestBuildTaskReport_PagesThroughList(t *testing.T) {
	pages := map[string][]model.TasksResponse{
		"l1": {
			{
				Tasks: []model.Task{
					{ID: "t1", Name: "First", Status: model.TaskStatus{Status: "to do"}, Assignees: []model.User{{Username: "ana"}}},
					{ID: "t2", Name: "Second", Status: model.TaskStatus{Status: "in progress"}, DueDate: "1700000000000"},
				},
				LastPage: false,
			},
			{
				Tasks:    []model.Task{{ID: "t3", Name: "Third", Status: model.TaskStatus{Status: "done"}}},
				LastPage: true,
			},
		},
	}
	reports := newReportBackend(t, pages)

	book, err := reports.BuildTaskReport(context.Background(), []string{"l1"}, false)
	require.NoError(t, err)
	require.NotEmpty(t, book)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per task across both pages")

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "t1", rows[1][0])
	assert.Equal(t, "ana", rows[1][3])
	assert.Equal(t, "Second", rows[2][1])
	assert.Equal(t, "2023-11-14", rows[2][5])
	assert.Equal(t, "t3", rows[3][0])
}

func TestBuildTaskReport_CombinesLists(t *testing.T) {
	pages := map[string][]model.TasksResponse{
		"l1": {{Tasks: []model.Task{{ID: "a", Name: "A"}}, LastPage: true}},
		"l2": {{Tasks: []model.Task{{ID: "b", Name: "B"}}, LastPage: true}},
	}
	reports := newReportBackend(t, pages)

	book, err := reports.BuildTaskReport(context.Background(), []string{"l1", "l2"}, false)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestBuildTaskReport_FailedFetchAborts(t *testing.T) {
	reports := newReportBackend(t, map[string][]model.TasksResponse{})

	_, err := reports.BuildTaskReport(context.Background(), []string{"missing"}, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "List not found")
}

func TestBuildTaskReport_EmptyListStillHasHeader(t *testing.T) {
	pages := map[string][]model.TasksResponse{
		"l1": {{Tasks: nil, LastPage: true}},
	}
	reports := newReportBackend(t, pages)

	book, err := reports.BuildTaskReport(context.Background(), []string{"l1"}, false)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, reportHeaders, rows[0])
}
