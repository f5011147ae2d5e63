package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/middleware"
	"tabdeel-pulse/internal/models"
)

func (h *Handlers) ListTasks(c *gin.Context) {
	tasks, err := h.Productivity.TasksFor(middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type taskRequest struct {
	Title       string `json:"title"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	IsCompleted bool   `json:"isCompleted"`
}

func (r taskRequest) toModel() (*models.Task, error) {
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return nil, apperr.Validation("invalid due date")
	}
	return &models.Task{
		Title:       r.Title,
		AssignedTo:  r.AssignedTo,
		DueDate:     dueDate,
		IsCompleted: r.IsCompleted,
	}, nil
}

func (h *Handlers) AddTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	task, err := req.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	created, err := h.Productivity.AddTask(task, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) UpdateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	task, err := req.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	task.ID = c.Param("id")
	updated, err := h.Productivity.UpdateTask(task, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) ListAnnouncements(c *gin.Context) {
	anns, err := h.Productivity.Announcements()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, anns)
}

type announcementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handlers) AddAnnouncement(c *gin.Context) {
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	created, err := h.Productivity.AddAnnouncement(&models.Announcement{
		Title:   req.Title,
		Content: req.Content,
	}, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
