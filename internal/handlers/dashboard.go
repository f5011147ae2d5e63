package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/middleware"
	"tabdeel-pulse/internal/models"
)

func (h *Handlers) Dashboard(c *gin.Context) {
	payments, err := h.Store.Payments()
	if err != nil {
		fail(c, err)
		return
	}
	pendingApprovals := 0
	for _, p := range payments {
		if p.Status == models.PaymentPending {
			pendingApprovals++
		}
	}

	activeJobs, err := h.Store.ActiveJobs()
	if err != nil {
		fail(c, err)
		return
	}

	notifications, err := h.Store.NotificationsForUser(middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"pendingApprovals":    pendingApprovals,
		"activeJobs":          len(activeJobs),
		"unreadNotifications": unread,
	})
}

func (h *Handlers) ListActivity(c *gin.Context) {
	entries, err := h.Activity.Recent(200)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handlers) ListProjects(c *gin.Context) {
	projects, err := h.Store.Projects()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

type projectRequest struct {
	Name   string `json:"name"`
	Client string `json:"client"`
	Status string `json:"status"`
}

func (h *Handlers) SaveProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	project := &models.Project{
		ID:     c.Param("id"),
		Name:   req.Name,
		Client: req.Client,
		Status: models.ProjectStatus(req.Status),
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
		project.CreatedTimestamp = timeNow()
	} else {
		existing, err := h.Store.Project(project.ID)
		if err != nil {
			fail(c, err)
			return
		}
		project.CreatedTimestamp = existing.CreatedTimestamp
	}
	if err := h.Store.SaveProject(project); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
