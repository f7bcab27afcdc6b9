package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/catorch/aegis/internal/model"
)

const reportSheet = "Tasks"

var reportHeaders = []string{
	"ID", "Name", "Status", "Assignees", "Priority", "Due Date", "List", "URL",
}

// ReportService renders task listings into an xlsx workbook. It is a pure
// fan-in over the ClickUp adapter: sequential fetches, nothing persisted.
type ReportService struct {
	Click  *ClickUpService
	Logger *logrus.Logger
}

func NewReportService(click *ClickUpService, logger *logrus.Logger) *ReportService {
	if logger == nil {
		logger = logrus.New()
	}
	return &ReportService{Click: click, Logger: logger}
}

// BuildTaskReport fetches every task of every requested list and returns the
// workbook bytes. A failed fetch aborts the report with the envelope's error.
func (s *ReportService) BuildTaskReport(ctx context.Context, listIDs []string, subtasks bool) ([]byte, error) {
	var tasks []model.Task
	for _, listID := range listIDs {
		listTasks, err := s.fetchAllTasks(ctx, listID, subtasks)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, listTasks...)
	}

	s.Logger.WithFields(logrus.Fields{"lists": len(listIDs), "tasks": len(tasks)}).Info("building task report")

	return renderWorkbook(tasks)
}

// fetchAllTasks pages through a list until ClickUp reports the last page.
func (s *ReportService) fetchAllTasks(ctx context.Context, listID string, subtasks bool) ([]model.Task, error) {
	var tasks []model.Task
	page := 0
	for {
		res := s.Click.GetTasks(ctx, listID, TaskListOptions{Page: page, Subtasks: subtasks})
		if !res.Ok() {
			return nil, fmt.Errorf("fetch tasks for list %s: %s", listID, res.Err())
		}
		data, ok := res.Data()
		if !ok {
			break
		}
		tasks = append(tasks, data.Tasks...)
		if data.LastPage || len(data.Tasks) == 0 {
			break
		}
		page++
	}
	return tasks, nil
}

func renderWorkbook(tasks []model.Task) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}

	for i, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, task := range tasks {
		values := []any{
			task.ID,
			task.Name,
			task.Status.Status,
			assigneeNames(task.Assignees),
			priorityLabel(task.Priority),
			formatMillis(task.DueDate),
			task.List.Name,
			task.URL,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	for i := range reportHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(reportSheet, col, col, 24); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func assigneeNames(users []model.User) string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return strings.Join(names, ", ")
}

func priorityLabel(priority map[string]any) string {
	if priority == nil {
		return ""
	}
	if label, ok := priority["priority"].(string); ok {
		return label
	}
	return ""
}

// formatMillis renders a millisecond timestamp string as a date; ClickUp
// sends dates as stringified unix millis.
func formatMillis(ms string) string {
	if ms == "" {
		return ""
	}
	parsed, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return ms
	}
	return time.UnixMilli(parsed).UTC().Format("2006-01-02")
}
