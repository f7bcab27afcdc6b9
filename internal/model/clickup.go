package model

// ClickUp v2 resource shapes. Field names and tags mirror the wire format;
// large or loosely specified remote structures (members, features, custom
// fields, attachments) stay open maps so unknown keys survive a round trip.

type Workspace struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Color   string           `json:"color,omitempty"`
	Avatar  string           `json:"avatar,omitempty"`
	Members []map[string]any `json:"members,omitempty"`
}

// Team is what ClickUp calls a workspace on the single-workspace endpoint.
type Team struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Color   string           `json:"color,omitempty"`
	Avatar  string           `json:"avatar,omitempty"`
	Members []map[string]any `json:"members,omitempty"`
	Roles   []map[string]any `json:"roles,omitempty"`
}

// WorkspaceResponse is the GET team/{id} reply, nested under "team".
type WorkspaceResponse struct {
	Team Team `json:"team"`
}

type Space struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Private           bool             `json:"private,omitempty"`
	Statuses          []map[string]any `json:"statuses,omitempty"`
	MultipleAssignees bool             `json:"multiple_assignees,omitempty"`
	Features          map[string]any   `json:"features,omitempty"`
	Archived          bool             `json:"archived,omitempty"`
}

type Folder struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Orderindex       int              `json:"orderindex,omitempty"`
	OverrideStatuses bool             `json:"override_statuses,omitempty"`
	Hidden           bool             `json:"hidden,omitempty"`
	Space            map[string]any   `json:"space,omitempty"`
	TaskCount        string           `json:"task_count,omitempty"`
	Archived         bool             `json:"archived,omitempty"`
	Statuses         []map[string]any `json:"statuses,omitempty"`
	Lists            []map[string]any `json:"lists,omitempty"`
}

// ListLocation is the folder/space back-reference carried on a list.
type ListLocation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"hidden,omitempty"`
	Access bool   `json:"access"`
}

type List struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Orderindex       int            `json:"orderindex"`
	Status           map[string]any `json:"status,omitempty"`
	Priority         map[string]any `json:"priority,omitempty"`
	Assignee         map[string]any `json:"assignee,omitempty"`
	TaskCount        int            `json:"task_count"`
	DueDate          string         `json:"due_date,omitempty"`
	StartDate        string         `json:"start_date,omitempty"`
	Folder           ListLocation   `json:"folder"`
	Space            ListLocation   `json:"space"`
	Archived         bool           `json:"archived"`
	OverrideStatuses map[string]any `json:"override_statuses,omitempty"`
	PermissionLevel  string         `json:"permission_level,omitempty"`
}

type TaskStatus struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Color      string `json:"color"`
	Type       string `json:"type"`
	Orderindex int    `json:"orderindex"`
}

type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Color          string `json:"color"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Initials       string `json:"initials,omitempty"`
}

type TaskSharing struct {
	Public               bool     `json:"public"`
	PublicShareExpiresOn string   `json:"public_share_expires_on,omitempty"`
	PublicFields         []string `json:"public_fields"`
	Token                string   `json:"token,omitempty"`
	SeoOptimized         bool     `json:"seo_optimized"`
}

// TaskLocation is a list/folder/space/project reference carried on a task.
type TaskLocation struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Access bool   `json:"access,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

type Task struct {
	ID              string           `json:"id"`
	CustomID        string           `json:"custom_id,omitempty"`
	CustomItemID    int              `json:"custom_item_id,omitempty"`
	Name            string           `json:"name"`
	TextContent     string           `json:"text_content,omitempty"`
	Description     string           `json:"description,omitempty"`
	Status          TaskStatus       `json:"status"`
	Orderindex      string           `json:"orderindex,omitempty"`
	DateCreated     string           `json:"date_created,omitempty"`
	DateUpdated     string           `json:"date_updated,omitempty"`
	DateClosed      string           `json:"date_closed,omitempty"`
	DateDone        string           `json:"date_done,omitempty"`
	Archived        bool             `json:"archived,omitempty"`
	Creator         User             `json:"creator"`
	Assignees       []User           `json:"assignees,omitempty"`
	GroupAssignees  []map[string]any `json:"group_assignees,omitempty"`
	Watchers        []User           `json:"watchers,omitempty"`
	Checklists      []map[string]any `json:"checklists,omitempty"`
	Tags            []map[string]any `json:"tags,omitempty"`
	Parent          string           `json:"parent,omitempty"`
	TopLevelParent  string           `json:"top_level_parent,omitempty"`
	Priority        map[string]any   `json:"priority,omitempty"`
	DueDate         string           `json:"due_date,omitempty"`
	StartDate       string           `json:"start_date,omitempty"`
	Points          float64          `json:"points,omitempty"`
	TimeEstimate    int64            `json:"time_estimate,omitempty"`
	TimeSpent       int64            `json:"time_spent,omitempty"`
	CustomFields    []map[string]any `json:"custom_fields,omitempty"`
	Dependencies    []map[string]any `json:"dependencies,omitempty"`
	LinkedTasks     []map[string]any `json:"linked_tasks,omitempty"`
	Locations       []map[string]any `json:"locations,omitempty"`
	TeamID          string           `json:"team_id,omitempty"`
	URL             string           `json:"url,omitempty"`
	Sharing         *TaskSharing     `json:"sharing,omitempty"`
	PermissionLevel string           `json:"permission_level,omitempty"`
	List            TaskLocation     `json:"list"`
	Project         TaskLocation     `json:"project"`
	Folder          TaskLocation     `json:"folder"`
	Space           TaskLocation     `json:"space"`
	Attachments     []map[string]any `json:"attachments,omitempty"`
}

type Comment struct {
	ID          string `json:"id"`
	CommentText string `json:"comment_text"`
	User        User   `json:"user"`
	Date        string `json:"date"`
}

// ListsResponse is the body of folder/{id}/list and space/{id}/list.
type ListsResponse struct {
	Lists []List `json:"lists"`
}

// TasksResponse is the body of list/{id}/task.
type TasksResponse struct {
	Tasks    []Task `json:"tasks"`
	LastPage bool   `json:"last_page"`
}
