package model

// Request shapes for mutating ClickUp operations.
//
// Create shapes carry required-field tags checked before any network call.
// Update shapes use pointer fields with omitempty: ClickUp partial-update
// semantics depend on omission, so a field the caller never set must not
// appear in the payload at all.

type CreateSpaceRequest struct {
	Name              string `json:"name" binding:"required" validate:"required"`
	MultipleAssignees *bool  `json:"multiple_assignees,omitempty"`
}

type UpdateSpaceRequest struct {
	Name              *string `json:"name,omitempty"`
	MultipleAssignees *bool   `json:"multiple_assignees,omitempty"`
}

type CreateFolderRequest struct {
	Name   string `json:"name" binding:"required" validate:"required"`
	Hidden *bool  `json:"hidden,omitempty"`
}

type UpdateFolderRequest struct {
	Name   *string `json:"name,omitempty"`
	Hidden *bool   `json:"hidden,omitempty"`
}

type CreateListRequest struct {
	Name     string  `json:"name" binding:"required" validate:"required"`
	Content  *string `json:"content,omitempty"`
	DueDate  *int64  `json:"due_date,omitempty"`
	Priority *int    `json:"priority,omitempty"`
	Assignee *int    `json:"assignee,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type UpdateListRequest struct {
	Name        *string `json:"name,omitempty"`
	Content     *string `json:"content,omitempty"`
	DueDate     *int64  `json:"due_date,omitempty"`
	DueDateTime *bool   `json:"due_date_time,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	Assignee    *int    `json:"assignee,omitempty"`
	UnsetStatus *bool   `json:"unset_status,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type CreateTaskRequest struct {
	Name                      string           `json:"name" binding:"required" validate:"required"`
	Description               *string          `json:"description,omitempty"`
	Assignees                 []int            `json:"assignees,omitempty"`
	Archived                  *bool            `json:"archived,omitempty"`
	GroupAssignees            []string         `json:"group_assignees,omitempty"`
	Tags                      []string         `json:"tags,omitempty"`
	Status                    *string          `json:"status,omitempty"`
	Priority                  *int             `json:"priority,omitempty"`
	DueDate                   *int64           `json:"due_date,omitempty"`
	DueDateTime               *bool            `json:"due_date_time,omitempty"`
	TimeEstimate              *int64           `json:"time_estimate,omitempty"`
	StartDate                 *int64           `json:"start_date,omitempty"`
	StartDateTime             *bool            `json:"start_date_time,omitempty"`
	Points                    *float64         `json:"points,omitempty"`
	NotifyAll                 *bool            `json:"notify_all,omitempty"`
	Parent                    *string          `json:"parent,omitempty"`
	MarkdownContent           *string          `json:"markdown_content,omitempty"`
	LinksTo                   *string          `json:"links_to,omitempty"`
	CheckRequiredCustomFields *bool            `json:"check_required_custom_fields,omitempty"`
	CustomFields              []map[string]any `json:"custom_fields,omitempty"`
	CustomItemID              *int             `json:"custom_item_id,omitempty"`
}

type UpdateTaskRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Status          *string `json:"status,omitempty"`
	Priority        *int    `json:"priority,omitempty"`
	DueDate         *int64  `json:"due_date,omitempty"`
	TimeEstimate    *int64  `json:"time_estimate,omitempty"`
	Assignees       []int   `json:"assignees,omitempty"`
	AddAssignees    []int   `json:"add_assignees,omitempty"`
	RemoveAssignees []int   `json:"remove_assignees,omitempty"`
}

type CreateCommentRequest struct {
	CommentText string `json:"comment_text" binding:"required" validate:"required"`
	Assignee    *int   `json:"assignee,omitempty"`
	NotifyAll   *bool  `json:"notify_all,omitempty"`
}

// SetTaskDependenciesRequest links a task to the tasks it depends on and the
// tasks that depend on it. Both sides are optional; empty sides are omitted.
type SetTaskDependenciesRequest struct {
	DependsOn    []string `json:"depends_on,omitempty"`
	DependencyOf []string `json:"dependency_of,omitempty"`
}
