package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labdex/labdex/pkg/gmail"
	"github.com/labdex/labdex/pkg/jobs"
)

// GmailConnect handles GET /api/gmail/connect and returns the Google
// consent URL for the current user.
func (s *Server) GmailConnect(c *gin.Context) {
	url, err := s.connector.AuthURL(currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth_url": url})
}

// GmailCallback handles GET /api/gmail/callback. Identity comes from the
// one-time state issued at connect time.
func (s *Server) GmailCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state and code are required"})
		return
	}

	userID, err := s.connector.HandleCallback(c.Request.Context(), state, code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"connected": true, "user_id": userID})
}

// scanCandidate is one inbox message the scan judged worth offering.
type scanCandidate struct {
	MessageID        string            `json:"message_id"`
	Subject          string            `json:"subject"`
	From             string            `json:"from"`
	Date             string            `json:"date"`
	Confidence       float64           `json:"confidence"`
	Reason           string            `json:"reason"`
	Attachments      []gmailAttachment `json:"attachments"`
	Rejected         []gmailAttachment `json:"rejected_attachments,omitempty"`
	AttachmentIssues []string          `json:"attachment_issues,omitempty"`
}

type gmailAttachment struct {
	Filename     string `json:"filename"`
	MimeType     string `json:"mime_type"`
	AttachmentID string `json:"attachment_id"`
	Size         int64  `json:"size"`
}

// GmailScan handles POST /api/gmail/scan. The sweep and both classifier
// stages run as a job; the response carries the job id to poll.
func (s *Server) GmailScan(c *gin.Context) {
	userID := currentUser(c)

	// Fail fast on a missing connection instead of inside the job.
	svc, err := s.connector.Service(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	job := s.registry.Submit(c.Request.Context(), "gmail_scan", func(ctx context.Context, h *jobs.Handle) (interface{}, error) {
		h.SetProgress(5, "sweeping inbox")
		metas, err := s.sweeper.Sweep(ctx, svc, nil)
		if err != nil {
			return nil, fmt.Errorf("sweep inbox: %w", err)
		}

		h.SetProgress(40, "screening subjects")
		verdicts := s.classifier.ClassifySubjects(ctx, metas)
		byID := make(map[string]gmail.MessageMeta, len(metas))
		for _, m := range metas {
			byID[m.ID] = m
		}
		var likely []gmail.MessageMeta
		for _, v := range verdicts {
			if v.LabLikely {
				likely = append(likely, byID[v.MessageID])
			}
		}

		h.SetProgress(60, "classifying message bodies")
		bodies := s.classifier.ClassifyBodies(ctx, svc, likely)

		var candidates []scanCandidate
		for _, v := range bodies {
			if !v.Accepted {
				continue
			}
			meta := byID[v.MessageID]
			candidates = append(candidates, scanCandidate{
				MessageID:        v.MessageID,
				Subject:          meta.Subject,
				From:             meta.From,
				Date:             meta.Date,
				Confidence:       v.Confidence,
				Reason:           v.Reason,
				Attachments:      toAPIAttachments(v.Attachments),
				Rejected:         toAPIAttachments(v.RejectedAttachments),
				AttachmentIssues: v.AttachmentIssues,
			})
		}

		h.SetProgress(100, "scan complete")
		return gin.H{
			"swept":      len(metas),
			"lab_likely": len(likely),
			"candidates": candidates,
		}, nil
	})

	c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID, "status": job.Status})
}

type ingestRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	Attachments []struct {
		MessageID    string `json:"message_id" binding:"required"`
		AttachmentID string `json:"attachment_id" binding:"required"`
		Filename     string `json:"filename"`
		MimeType     string `json:"mime_type"`
	} `json:"attachments" binding:"required,min=1"`
}

// GmailIngest handles POST /api/gmail/ingest: the selected attachments run
// through the report pipeline as a job with per-item progress.
func (s *Server) GmailIngest(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUser(c)
	refs := make([]gmail.AttachmentRef, len(req.Attachments))
	for i, a := range req.Attachments {
		refs[i] = gmail.AttachmentRef{
			MessageID:    a.MessageID,
			AttachmentID: a.AttachmentID,
			Filename:     a.Filename,
			MimeType:     a.MimeType,
		}
	}

	job := s.registry.Submit(c.Request.Context(), "gmail_ingest", func(ctx context.Context, h *jobs.Handle) (interface{}, error) {
		res, err := s.ingestor.IngestBatch(ctx, userID, req.PatientID, refs, func(done, total int) {
			h.SetProgress(done*100/total, fmt.Sprintf("%d of %d attachments", done, total))
		})
		if err != nil {
			return nil, err
		}
		return res, nil
	})

	c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID, "status": job.Status})
}

func toAPIAttachments(atts []gmail.Attachment) []gmailAttachment {
	if len(atts) == 0 {
		return nil
	}
	out := make([]gmailAttachment, len(atts))
	for i, a := range atts {
		out[i] = gmailAttachment{
			Filename:     a.Filename,
			MimeType:     a.MimeType,
			AttachmentID: a.AttachmentID,
			Size:         a.Size,
		}
	}
	return out
}
