package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/middleware"
	"tabdeel-pulse/internal/models"
)

func (h *Handlers) ListPayments(c *gin.Context) {
	payments, err := h.Finance.Payments()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handlers) UpdatePayment(c *gin.Context) {
	var payment models.PaymentInstruction
	if err := c.ShouldBindJSON(&payment); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	payment.ID = c.Param("id")
	updated, err := h.Finance.UpdatePayment(&payment, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) ListAccounts(c *gin.Context) {
	accounts, err := h.Finance.Accounts()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *Handlers) UpdateAccount(c *gin.Context) {
	var account models.AccountHead
	if err := c.ShouldBindJSON(&account); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	account.ID = c.Param("id")
	updated, err := h.Finance.UpdateAccount(&account, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) ListCollections(c *gin.Context) {
	collections, err := h.Finance.Collections()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

func (h *Handlers) ListDeposits(c *gin.Context) {
	deposits, err := h.Finance.Deposits()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deposits)
}
