package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/middleware"
	"tabdeel-pulse/internal/models"
)

func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type addUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   string `json:"roleId"`
	Password string `json:"password"`
}

func (h *Handlers) AddUser(c *gin.Context) {
	var req addUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	user, err := h.Users.Add(req.Name, req.Email, req.RoleID, req.Password, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handlers) UpdateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	user.ID = c.Param("id")
	updated, err := h.Users.Update(&user, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) ListRoles(c *gin.Context) {
	roles, err := h.Perms.Roles()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *Handlers) SaveRole(c *gin.Context) {
	var role models.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	saved, err := h.Perms.SaveRole(&role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
