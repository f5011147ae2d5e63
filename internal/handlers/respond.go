package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/apperr"
)

// fail maps the error taxonomy onto HTTP status codes.
func fail(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "details": ve.Details})
		return
	}
	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}
	var is *apperr.InvalidStateError
	if errors.As(err, &is) {
		c.JSON(http.StatusConflict, gin.H{"error": is.Message})
		return
	}
	var pd *apperr.PermissionDeniedError
	if errors.As(err, &pd) {
		c.JSON(http.StatusForbidden, gin.H{"error": pd.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

var timeNow = time.Now

// parseDate accepts a bare date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
