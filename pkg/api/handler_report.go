package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds a single report upload.
const maxUploadBytes = 25 << 20

// UploadReport handles POST /api/reports: a multipart upload with a file
// part and a patient_id field. The whole pipeline runs synchronously; a
// report is small enough that job indirection would only hide errors.
func (s *Server) UploadReport(c *gin.Context) {
	patientID := c.PostForm("patient_id")
	if patientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id is required"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	payload, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(payload) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	outcome, err := s.reports.Process(c.Request.Context(), currentUser(c), patientID,
		header.Filename, mimeType, payload)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if !outcome.Created {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"report_id": outcome.ReportID,
		"created":   outcome.Created,
		"rows":      outcome.Rows,
		"mapped":    outcome.Mapped,
		"queued":    outcome.Queued,
	})
}
