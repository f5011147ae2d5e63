package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/middleware"
	"tabdeel-pulse/internal/models"
)

func (h *Handlers) ListJobs(c *gin.Context) {
	list, err := h.Jobs.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handlers) GetJob(c *gin.Context) {
	job, err := h.Jobs.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

type jobRequest struct {
	Title        string `json:"title"`
	ProjectID    string `json:"projectId"`
	AssignedToID string `json:"assignedToId"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	DueDate      string `json:"dueDate"`
	Description  string `json:"description"`
}

func (r jobRequest) toModel() (*models.ServiceJob, error) {
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return nil, apperr.Validation("invalid due date")
	}
	return &models.ServiceJob{
		Title:        r.Title,
		ProjectID:    r.ProjectID,
		AssignedToID: r.AssignedToID,
		Status:       models.JobStatus(r.Status),
		Priority:     models.JobPriority(r.Priority),
		DueDate:      dueDate,
		Description:  r.Description,
	}, nil
}

func (h *Handlers) CreateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	job, err := req.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	created, err := h.Jobs.Create(job, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) UpdateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	job, err := req.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	job.ID = c.Param("id")
	updated, err := h.Jobs.Update(job, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *Handlers) AddJobComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	updated, err := h.Jobs.AddComment(c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// TriggerSweep runs an escalation pass on demand, outside the
// scheduled loop. Admin tooling only.
func (h *Handlers) TriggerSweep(c *gin.Context) {
	n, err := h.Engine.Sweep(time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transitions": n})
}
