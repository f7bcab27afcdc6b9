package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/catorch/aegis/internal/model"
	"github.com/catorch/aegis/internal/service"
)

// ClickUpHandler is a thin pass-through: bind the request, call the adapter,
// write the envelope with the envelope's own status.
type ClickUpHandler struct {
	Click *service.ClickUpService
}

func NewClickUpHandler(click *service.ClickUpService) *ClickUpHandler {
	return &ClickUpHandler{Click: click}
}

// WORKSPACES

func (h *ClickUpHandler) GetWorkspaces(c *gin.Context) {
	res := h.Click.GetWorkspaces(c.Request.Context())
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) GetWorkspace(c *gin.Context) {
	res := h.Click.GetWorkspace(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

// SPACES

func (h *ClickUpHandler) GetSpaces(c *gin.Context) {
	res := h.Click.GetSpaces(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) GetSpace(c *gin.Context) {
	res := h.Click.GetSpace(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) CreateSpace(c *gin.Context) {
	var req model.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.CreateSpace(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) UpdateSpace(c *gin.Context) {
	var req model.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.UpdateSpace(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) DeleteSpace(c *gin.Context) {
	res := h.Click.DeleteSpace(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

// FOLDERS

func (h *ClickUpHandler) GetFolders(c *gin.Context) {
	res := h.Click.GetFolders(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) GetFolder(c *gin.Context) {
	res := h.Click.GetFolder(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) CreateFolder(c *gin.Context) {
	var req model.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.CreateFolder(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) UpdateFolder(c *gin.Context) {
	var req model.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.UpdateFolder(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) DeleteFolder(c *gin.Context) {
	res := h.Click.DeleteFolder(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

// LISTS

func (h *ClickUpHandler) GetLists(c *gin.Context) {
	res := h.Click.GetLists(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) GetFolderlessLists(c *gin.Context) {
	res := h.Click.GetFolderlessLists(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) GetList(c *gin.Context) {
	res := h.Click.GetList(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) CreateListInFolder(c *gin.Context) {
	var req model.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.CreateListInFolder(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) CreateListInSpace(c *gin.Context) {
	var req model.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.CreateListInSpace(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) UpdateList(c *gin.Context) {
	var req model.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.UpdateList(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) DeleteList(c *gin.Context) {
	res := h.Click.DeleteList(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

// TASKS

func (h *ClickUpHandler) GetTasks(c *gin.Context) {
	opts := service.TaskListOptions{}
	if v, err := strconv.ParseBool(c.DefaultQuery("archived", "false")); err == nil {
		opts.Archived = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil {
		opts.Page = v
	}
	if v, err := strconv.ParseBool(c.DefaultQuery("subtasks", "false")); err == nil {
		opts.Subtasks = v
	}
	res := h.Click.GetTasks(c.Request.Context(), c.Param("id"), opts)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) GetTask(c *gin.Context) {
	res := h.Click.GetTask(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) CreateTask(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.CreateTask(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) UpdateTask(c *gin.Context) {
	var req model.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.UpdateTask(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) DeleteTask(c *gin.Context) {
	res := h.Click.DeleteTask(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

// COMMENTS

func (h *ClickUpHandler) GetTaskComments(c *gin.Context) {
	res := h.Click.GetTaskComments(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status(), res)
}

func (h *ClickUpHandler) AddTaskComment(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.AddTaskComment(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}

// DEPENDENCIES

func (h *ClickUpHandler) SetTaskDependencies(c *gin.Context) {
	var req model.SetTaskDependenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := h.Click.SetTaskDependencies(c.Request.Context(), c.Param("id"), req)
	c.JSON(res.Status(), res)
}
