package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetJob handles GET /api/jobs/:id.
func (s *Server) GetJob(c *gin.Context) {
	job, err := s.registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CancelJob handles POST /api/jobs/:id/cancel. Cancelling an unknown or
// already-terminal job is a conflict, not an error the caller can fix.
func (s *Server) CancelJob(c *gin.Context) {
	if !s.registry.Cancel(c.Param("id")) {
		c.JSON(http.StatusConflict, gin.H{"error": "job is not cancellable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelling"})
}
