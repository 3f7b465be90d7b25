package api

import (
	stdsql "database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labdex/labdex/ent"
	"github.com/labdex/labdex/ent/matchreview"
	"github.com/labdex/labdex/ent/pendinganalyte"
	"github.com/labdex/labdex/ent/unitreview"
	"github.com/labdex/labdex/pkg/mapping"
)

// reviewPageSize caps review listings; the queues are worked oldest-first.
const reviewPageSize = 200

// ListUnitReviews handles GET /api/reviews/units.
func (s *Server) ListUnitReviews(c *gin.Context) {
	status := unitreview.Status(c.DefaultQuery("status", "pending"))
	if err := unitreview.StatusValidator(status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	reviews, err := s.db.UnitReview.Query().
		Where(unitreview.StatusEQ(status)).
		Order(ent.Asc(unitreview.FieldCreatedAt)).
		Limit(reviewPageSize).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type resolveUnitReviewRequest struct {
	// Canonical is the unit the reviewer settled on. Empty with Dismiss
	// unset is invalid.
	Canonical string `json:"canonical"`
	Dismiss   bool   `json:"dismiss"`
}

// ResolveUnitReview handles POST /api/reviews/units/:id/resolve. Accepting
// a canonical learns the alias, patches the reviewed result and resolves
// the row in one transaction.
func (s *Server) ResolveUnitReview(c *gin.Context) {
	var req resolveUnitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Dismiss && req.Canonical == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "canonical is required unless dismissing"})
		return
	}

	reviewID := c.Param("id")
	ctx := c.Request.Context()

	if req.Dismiss {
		n, err := s.db.UnitReview.Update().
			Where(unitreview.IDEQ(reviewID), unitreview.StatusEQ(unitreview.StatusPending)).
			SetStatus(unitreview.StatusDismissed).
			Save(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "pending unit review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "dismissed"})
		return
	}

	tx, err := s.db.AdminDB().BeginTx(ctx, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = tx.Rollback() }()

	var resultID, normalized string
	err = tx.QueryRowContext(ctx, `
		SELECT result_id, normalized_input
		FROM unit_reviews
		WHERE id = $1 AND status = 'pending'
		FOR UPDATE`, reviewID).
		Scan(&resultID, &normalized)
	if errors.Is(err, stdsql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending unit review not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	// A manual resolution overrides whatever source learned the alias
	// before; the reviewer's word is final.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO unit_aliases (alias, canonical, source)
		VALUES ($1, $2, 'manual')
		ON CONFLICT (alias) DO UPDATE
		SET canonical = EXCLUDED.canonical, source = 'manual', last_used_at = now()`,
		normalized, req.Canonical); err != nil {
		respondError(c, err)
		return
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE lab_results SET unit_canonical = $2 WHERE id = $1`,
		resultID, req.Canonical); err != nil {
		respondError(c, err)
		return
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE unit_reviews SET status = 'resolved' WHERE id = $1`,
		reviewID); err != nil {
		respondError(c, err)
		return
	}

	if err := tx.Commit(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved", "canonical": req.Canonical})
}

// ListMatchReviews handles GET /api/reviews/matches.
func (s *Server) ListMatchReviews(c *gin.Context) {
	status := matchreview.Status(c.DefaultQuery("status", "pending"))
	if err := matchreview.StatusValidator(status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	reviews, err := s.db.MatchReview.Query().
		Where(matchreview.StatusEQ(status)).
		Order(ent.Asc(matchreview.FieldCreatedAt)).
		Limit(reviewPageSize).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type resolveMatchReviewRequest struct {
	// Code is the analyte the reviewer picked. Empty with Skip unset is
	// invalid.
	Code string `json:"code"`
	Skip bool   `json:"skip"`
}

// ResolveMatchReview handles POST /api/reviews/matches/:id/resolve. Picking
// a code maps the reviewed result, learns the label as an alias and resolves
// the row in one transaction.
func (s *Server) ResolveMatchReview(c *gin.Context) {
	var req resolveMatchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Skip && req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required unless skipping"})
		return
	}

	reviewID := c.Param("id")
	ctx := c.Request.Context()

	if req.Skip {
		n, err := s.db.MatchReview.Update().
			Where(matchreview.IDEQ(reviewID), matchreview.StatusEQ(matchreview.StatusPending)).
			SetStatus(matchreview.StatusSkipped).
			Save(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "pending match review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "skipped"})
		return
	}

	tx, err := s.db.AdminDB().BeginTx(ctx, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = tx.Rollback() }()

	var resultID string
	err = tx.QueryRowContext(ctx, `
		SELECT result_id
		FROM match_reviews
		WHERE id = $1 AND status = 'pending'
		FOR UPDATE`, reviewID).Scan(&resultID)
	if errors.Is(err, stdsql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending match review not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	var analyteID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM analytes WHERE code = $1`, req.Code).Scan(&analyteID)
	if errors.Is(err, stdsql.ErrNoRows) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown analyte code"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	var label string
	if err := tx.QueryRowContext(ctx, `
		UPDATE lab_results
		SET analyte_id = $2, mapping_confidence = 1.0, mapping_source = $3, mapped_at = now()
		WHERE id = $1
		RETURNING parameter_name`,
		resultID, analyteID, mapping.SourceManualDisambigAls).Scan(&label); err != nil {
		respondError(c, err)
		return
	}

	// The reviewer's pick teaches Tier A: the next report with this label
	// resolves without review.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO analyte_aliases (id, analyte_id, alias, display, source)
		VALUES ($1, $2, $3, $4, 'manual')
		ON CONFLICT (analyte_id, alias) DO NOTHING`,
		uuid.NewString(), analyteID, mapping.NormalizeLabel(label), label); err != nil {
		respondError(c, err)
		return
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE match_reviews
		SET status = 'resolved', resolved_via = 'manual', resolved_at = now()
		WHERE id = $1`, reviewID); err != nil {
		respondError(c, err)
		return
	}

	if err := tx.Commit(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved", "code": req.Code})
}

// ListPendingAnalytes handles GET /api/reviews/analytes.
func (s *Server) ListPendingAnalytes(c *gin.Context) {
	pending, err := s.db.PendingAnalyte.Query().
		Where(pendinganalyte.StatusEQ(pendinganalyte.StatusPending)).
		Order(ent.Asc(pendinganalyte.FieldCreatedAt)).
		Limit(reviewPageSize).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

type approveAnalyteRequest struct {
	Category string `json:"category"`
}

// ApproveAnalyte handles POST /api/reviews/analytes/:code/approve.
func (s *Server) ApproveAnalyte(c *gin.Context) {
	// The body is optional; category may be omitted entirely.
	var req approveAnalyteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := s.analytes.ApproveAnalyte(c.Request.Context(), c.Param("code"), req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"analyte_id":       result.AnalyteID,
		"code":             result.Code,
		"aliases_inserted": result.AliasesInserted,
		"backfilled":       result.Backfilled,
		"linked":           result.Linked,
		"reviews_resolved": result.ReviewsResolved,
	})
}

// DiscardAnalyte handles POST /api/reviews/analytes/:code/discard.
func (s *Server) DiscardAnalyte(c *gin.Context) {
	n, err := s.db.PendingAnalyte.Update().
		Where(
			pendinganalyte.ProposedCodeEQ(c.Param("code")),
			pendinganalyte.StatusEQ(pendinganalyte.StatusPending),
		).
		SetStatus(pendinganalyte.StatusDiscarded).
		Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending analyte not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "discarded"})
}
