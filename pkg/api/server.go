// Package api exposes the HTTP surface: report upload, the conversational
// SQL endpoint, Gmail connect/scan/ingest, review queues and job status.
// Handlers stay thin; domain logic lives in the packages they call.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/labdex/labdex/pkg/agentic"
	"github.com/labdex/labdex/pkg/database"
	"github.com/labdex/labdex/pkg/gmail"
	"github.com/labdex/labdex/pkg/jobs"
	"github.com/labdex/labdex/pkg/mapping"
	"github.com/labdex/labdex/pkg/report"
)

// Server holds handler dependencies.
type Server struct {
	db         *database.Client
	reports    *report.Processor
	agent      *agentic.Loop
	analytes   *mapping.PGStore
	connector  *gmail.Connector
	sweeper    *gmail.Sweeper
	classifier *gmail.Classifier
	ingestor   *gmail.Ingestor
	registry   *jobs.Registry
}

// NewServer wires the API server.
func NewServer(
	db *database.Client,
	reports *report.Processor,
	agent *agentic.Loop,
	analytes *mapping.PGStore,
	connector *gmail.Connector,
	sweeper *gmail.Sweeper,
	classifier *gmail.Classifier,
	ingestor *gmail.Ingestor,
	registry *jobs.Registry,
) *Server {
	return &Server{
		db:         db,
		reports:    reports,
		agent:      agent,
		analytes:   analytes,
		connector:  connector,
		sweeper:    sweeper,
		classifier: classifier,
		ingestor:   ingestor,
		registry:   registry,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.Health)

	// The OAuth callback carries its identity in the state parameter, not
	// in a session cookie: Google redirects the browser here directly.
	r.GET("/api/gmail/callback", s.GmailCallback)

	authed := r.Group("/api", s.requireSession())
	{
		authed.POST("/reports", s.UploadReport)
		authed.POST("/ask", s.Ask)

		authed.GET("/gmail/connect", s.GmailConnect)
		authed.POST("/gmail/scan", s.GmailScan)
		authed.POST("/gmail/ingest", s.GmailIngest)

		authed.GET("/reviews/units", s.ListUnitReviews)
		authed.POST("/reviews/units/:id/resolve", s.ResolveUnitReview)
		authed.GET("/reviews/matches", s.ListMatchReviews)
		authed.POST("/reviews/matches/:id/resolve", s.ResolveMatchReview)
		authed.GET("/reviews/analytes", s.ListPendingAnalytes)
		authed.POST("/reviews/analytes/:code/approve", s.ApproveAnalyte)
		authed.POST("/reviews/analytes/:code/discard", s.DiscardAnalyte)

		authed.GET("/jobs/:id", s.GetJob)
		authed.POST("/jobs/:id/cancel", s.CancelJob)
	}

	return r
}
