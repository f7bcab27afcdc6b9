package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/catorch/aegis/internal/model"
)

const DefaultBaseURL = "https://api.clickup.com/api/v2"

var validate = validator.New()

// ClickUpService is a stateless adapter over the ClickUp v2 API: one method
// per remote operation, each issuing exactly one outbound call and returning
// a ClickUpResponse envelope. The only long-lived state is the credential.
type ClickUpService struct {
	BaseURL string
	Token   string
	Client  *http.Client
	Logger  *logrus.Logger
}

// NewClickUpService creates a new service instance.
func NewClickUpService(token string, logger *logrus.Logger) *ClickUpService {
	if logger == nil {
		logger = logrus.New()
	}
	return &ClickUpService{
		BaseURL: DefaultBaseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 20 * time.Second},
		Logger:  logger,
	}
}

// call describes one outbound request for the generic dispatcher.
type call struct {
	method   string
	endpoint string
	query    url.Values
	// dataKey names the response field holding the payload when ClickUp
	// nests it (e.g. "teams", "spaces", "comments").
	dataKey string
	body    any
}

// request performs one ClickUp API call and normalizes every outcome into an
// envelope. Expected failures (remote rejection, transport error) never
// escape as Go errors.
func request[T any](ctx context.Context, s *ClickUpService, c call) model.ClickUpResponse[T] {
	target := s.BaseURL + "/" + c.endpoint
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}

	var payload io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return model.ErrorResponse[T](http.StatusInternalServerError, err.Error())
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target, payload)
	if err != nil {
		return model.ErrorResponse[T](http.StatusInternalServerError, err.Error())
	}
	req.Header.Set("Authorization", s.Token)
	req.Header.Set("Content-Type", "application/json")

	s.Logger.WithFields(logrus.Fields{"method": c.method, "endpoint": c.endpoint}).Debug("clickup request")

	res, err := s.Client.Do(req)
	if err != nil {
		s.Logger.WithError(err).WithField("endpoint", c.endpoint).Error("clickup request failed")
		return model.ErrorResponse[T](http.StatusInternalServerError, err.Error())
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return model.ErrorResponse[T](http.StatusInternalServerError, err.Error())
	}

	if res.StatusCode >= 400 {
		return model.ErrorResponse[T](res.StatusCode, remoteError(res.StatusCode, body))
	}

	// Delete operations don't return data.
	if c.method == http.MethodDelete {
		return model.EmptyResponse[T](res.StatusCode)
	}

	// Some deployments answer reads of deleted resources with an empty 2xx
	// body; report the status and let the caller decide what that means.
	if len(bytes.TrimSpace(body)) == 0 {
		return model.EmptyResponse[T](res.StatusCode)
	}

	raw := body
	if c.dataKey != "" {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return model.ErrorResponse[T](res.StatusCode, fmt.Sprintf("decode response: %v", err))
		}
		nested, ok := fields[c.dataKey]
		if !ok {
			return model.ErrorResponse[T](res.StatusCode, fmt.Sprintf("response missing %q field", c.dataKey))
		}
		raw = nested
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.ErrorResponse[T](res.StatusCode, fmt.Sprintf("decode response: %v", err))
	}
	return model.SuccessResponse(res.StatusCode, data)
}

// remoteError extracts ClickUp's error message, falling back to the raw body.
func remoteError(status int, body []byte) string {
	var remote struct {
		Err string `json:"err"`
	}
	if err := json.Unmarshal(body, &remote); err == nil && remote.Err != "" {
		return remote.Err
	}
	return fmt.Sprintf("clickup api error %d: %s", status, strings.TrimSpace(string(body)))
}

// invalid runs required-field validation before any network call is made.
func invalid[T any](req any) (model.ClickUpResponse[T], bool) {
	if err := validate.Struct(req); err != nil {
		return model.ErrorResponse[T](http.StatusBadRequest, err.Error()), true
	}
	return model.ClickUpResponse[T]{}, false
}

// Workspace operations (read-only)

// GetWorkspaces returns all workspaces the token can see.
func (s *ClickUpService) GetWorkspaces(ctx context.Context) model.ClickUpResponse[[]model.Workspace] {
	return request[[]model.Workspace](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "team",
		dataKey:  "teams",
	})
}

// GetWorkspace returns a single workspace by ID.
func (s *ClickUpService) GetWorkspace(ctx context.Context, workspaceID string) model.ClickUpResponse[model.WorkspaceResponse] {
	return request[model.WorkspaceResponse](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "team/" + workspaceID,
	})
}

// Space operations (full CRUD)

func (s *ClickUpService) GetSpaces(ctx context.Context, workspaceID string) model.ClickUpResponse[[]model.Space] {
	return request[[]model.Space](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "team/" + workspaceID + "/space",
		dataKey:  "spaces",
	})
}

func (s *ClickUpService) GetSpace(ctx context.Context, spaceID string) model.ClickUpResponse[model.Space] {
	return request[model.Space](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "space/" + spaceID,
	})
}

func (s *ClickUpService) CreateSpace(ctx context.Context, workspaceID string, space model.CreateSpaceRequest) model.ClickUpResponse[model.Space] {
	if res, bad := invalid[model.Space](space); bad {
		return res
	}
	return request[model.Space](ctx, s, call{
		method:   http.MethodPost,
		endpoint: "team/" + workspaceID + "/space",
		body:     space,
	})
}

func (s *ClickUpService) UpdateSpace(ctx context.Context, spaceID string, updates model.UpdateSpaceRequest) model.ClickUpResponse[model.Space] {
	return request[model.Space](ctx, s, call{
		method:   http.MethodPut,
		endpoint: "space/" + spaceID,
		body:     updates,
	})
}

func (s *ClickUpService) DeleteSpace(ctx context.Context, spaceID string) model.ClickUpResponse[struct{}] {
	return request[struct{}](ctx, s, call{
		method:   http.MethodDelete,
		endpoint: "space/" + spaceID,
	})
}

// Folder operations (full CRUD)

func (s *ClickUpService) GetFolders(ctx context.Context, spaceID string) model.ClickUpResponse[[]model.Folder] {
	return request[[]model.Folder](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "space/" + spaceID + "/folder",
		dataKey:  "folders",
	})
}

func (s *ClickUpService) GetFolder(ctx context.Context, folderID string) model.ClickUpResponse[model.Folder] {
	return request[model.Folder](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "folder/" + folderID,
	})
}

func (s *ClickUpService) CreateFolder(ctx context.Context, spaceID string, folder model.CreateFolderRequest) model.ClickUpResponse[model.Folder] {
	if res, bad := invalid[model.Folder](folder); bad {
		return res
	}
	return request[model.Folder](ctx, s, call{
		method:   http.MethodPost,
		endpoint: "space/" + spaceID + "/folder",
		body:     folder,
	})
}

func (s *ClickUpService) UpdateFolder(ctx context.Context, folderID string, updates model.UpdateFolderRequest) model.ClickUpResponse[model.Folder] {
	return request[model.Folder](ctx, s, call{
		method:   http.MethodPut,
		endpoint: "folder/" + folderID,
		body:     updates,
	})
}

func (s *ClickUpService) DeleteFolder(ctx context.Context, folderID string) model.ClickUpResponse[struct{}] {
	return request[struct{}](ctx, s, call{
		method:   http.MethodDelete,
		endpoint: "folder/" + folderID,
	})
}

// List operations (full CRUD)

// GetLists returns all lists in a folder.
func (s *ClickUpService) GetLists(ctx context.Context, folderID string) model.ClickUpResponse[model.ListsResponse] {
	return request[model.ListsResponse](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "folder/" + folderID + "/list",
	})
}

// GetFolderlessLists returns the lists living directly under a space.
func (s *ClickUpService) GetFolderlessLists(ctx context.Context, spaceID string) model.ClickUpResponse[model.ListsResponse] {
	return request[model.ListsResponse](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "space/" + spaceID + "/list",
	})
}

func (s *ClickUpService) GetList(ctx context.Context, listID string) model.ClickUpResponse[model.List] {
	return request[model.List](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "list/" + listID,
	})
}

func (s *ClickUpService) CreateListInFolder(ctx context.Context, folderID string, list model.CreateListRequest) model.ClickUpResponse[model.List] {
	if res, bad := invalid[model.List](list); bad {
		return res
	}
	return request[model.List](ctx, s, call{
		method:   http.MethodPost,
		endpoint: "folder/" + folderID + "/list",
		body:     list,
	})
}

func (s *ClickUpService) CreateListInSpace(ctx context.Context, spaceID string, list model.CreateListRequest) model.ClickUpResponse[model.List] {
	if res, bad := invalid[model.List](list); bad {
		return res
	}
	return request[model.List](ctx, s, call{
		method:   http.MethodPost,
		endpoint: "space/" + spaceID + "/list",
		body:     list,
	})
}

func (s *ClickUpService) UpdateList(ctx context.Context, listID string, updates model.UpdateListRequest) model.ClickUpResponse[model.List] {
	return request[model.List](ctx, s, call{
		method:   http.MethodPut,
		endpoint: "list/" + listID,
		body:     updates,
	})
}

func (s *ClickUpService) DeleteList(ctx context.Context, listID string) model.ClickUpResponse[struct{}] {
	return request[struct{}](ctx, s, call{
		method:   http.MethodDelete,
		endpoint: "list/" + listID,
	})
}

// Task operations (full CRUD)

// TaskListOptions are the query parameters of the task listing endpoint.
// Page is zero-based.
type TaskListOptions struct {
	Archived bool
	Page     int
	Subtasks bool
}

// GetTasks returns one page of tasks from a list.
func (s *ClickUpService) GetTasks(ctx context.Context, listID string, opts TaskListOptions) model.ClickUpResponse[model.TasksResponse] {
	params := url.Values{}
	params.Set("archived", strconv.FormatBool(opts.Archived))
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("subtasks", strconv.FormatBool(opts.Subtasks))
	return request[model.TasksResponse](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "list/" + listID + "/task",
		query:    params,
	})
}

func (s *ClickUpService) GetTask(ctx context.Context, taskID string) model.ClickUpResponse[model.Task] {
	return request[model.Task](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "task/" + taskID,
	})
}

func (s *ClickUpService) CreateTask(ctx context.Context, listID string, task model.CreateTaskRequest) model.ClickUpResponse[model.Task] {
	if res, bad := invalid[model.Task](task); bad {
		return res
	}
	return request[model.Task](ctx, s, call{
		method:   http.MethodPost,
		endpoint: "list/" + listID + "/task",
		body:     task,
	})
}

func (s *ClickUpService) UpdateTask(ctx context.Context, taskID string, updates model.UpdateTaskRequest) model.ClickUpResponse[model.Task] {
	return request[model.Task](ctx, s, call{
		method:   http.MethodPut,
		endpoint: "task/" + taskID,
		body:     updates,
	})
}

func (s *ClickUpService) DeleteTask(ctx context.Context, taskID string) model.ClickUpResponse[struct{}] {
	return request[struct{}](ctx, s, call{
		method:   http.MethodDelete,
		endpoint: "task/" + taskID,
	})
}

// Comment operations (create + list)

// AddTaskComment adds a comment to a task. The reply shape varies across
// deployments, so it stays an open map.
func (s *ClickUpService) AddTaskComment(ctx context.Context, taskID string, comment model.CreateCommentRequest) model.ClickUpResponse[map[string]any] {
	if res, bad := invalid[map[string]any](comment); bad {
		return res
	}
	return request[map[string]any](ctx, s, call{
		method:   http.MethodPost,
		endpoint: "task/" + taskID + "/comment",
		body:     comment,
	})
}

// GetTaskComments returns all comments on a task.
func (s *ClickUpService) GetTaskComments(ctx context.Context, taskID string) model.ClickUpResponse[[]model.Comment] {
	return request[[]model.Comment](ctx, s, call{
		method:   http.MethodGet,
		endpoint: "task/" + taskID + "/comment",
		dataKey:  "comments",
	})
}

// Dependency operations

// SetTaskDependencies links a task to the tasks it depends on and the tasks
// that depend on it.
func (s *ClickUpService) SetTaskDependencies(ctx context.Context, taskID string, deps model.SetTaskDependenciesRequest) model.ClickUpResponse[map[string]any] {
	return request[map[string]any](ctx, s, call{
		method:   http.MethodPost,
		endpoint: "task/" + taskID + "/dependency",
		body:     deps,
	})
}
