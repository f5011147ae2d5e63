package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/middleware"
)

func (h *Handlers) ListThreads(c *gin.Context) {
	threads, err := h.Messaging.ThreadsFor(middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

type messageRequest struct {
	Content string `json:"content"`
}

func (h *Handlers) PostMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	thread, err := h.Messaging.Post(c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

type threadRequest struct {
	Title          string   `json:"title"`
	Participants   []string `json:"participants"`
	InitialMessage string   `json:"initialMessage"`
}

func (h *Handlers) CreateThread(c *gin.Context) {
	var req threadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	thread, err := h.Messaging.CreateThread(req.Title, req.Participants,
		middleware.UserID(c), req.InitialMessage)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, thread)
}

func (h *Handlers) ListNotifications(c *gin.Context) {
	notifications, err := h.Notify.For(middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handlers) MarkNotificationsRead(c *gin.Context) {
	notifications, err := h.Notify.MarkAllRead(middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}
