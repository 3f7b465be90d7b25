package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labdex/labdex/pkg/gmail"
	"github.com/labdex/labdex/pkg/mapping"
	"github.com/labdex/labdex/pkg/report"
)

// respondError maps domain errors to HTTP responses. Anything unmapped is
// a 500 with the detail kept out of the response body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mapping.ErrPendingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "pending analyte not found"})
	case errors.Is(err, gmail.ErrNotConnected):
		c.JSON(http.StatusConflict, gin.H{"error": "gmail account not connected"})
	case errors.Is(err, report.ErrUnsupportedMIME):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, report.ErrTooManyPages):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		slog.Error("Unhandled API error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
