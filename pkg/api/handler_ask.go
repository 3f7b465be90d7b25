package api

import (
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labdex/labdex/pkg/agentic"
	"github.com/labdex/labdex/pkg/llm"
)

type askRequest struct {
	Question          string `json:"question" binding:"required"`
	SessionID         string `json:"session_id"`
	SelectedPatientID string `json:"selected_patient_id"`
}

// transcriptTurn is the persisted shape of one conversation turn.
type transcriptTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Ask handles POST /api/ask: one question through the agentic SQL loop,
// threaded through a chat session so follow-up turns keep context.
func (s *Server) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUser(c)
	ctx := c.Request.Context()

	sessionID := req.SessionID
	selectedPatient := req.SelectedPatientID
	var (
		history      []llm.Message
		patientCount int
	)

	err := s.db.WithUserTx(ctx, userID, func(tx *stdsql.Tx) error {
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM patients`).Scan(&patientCount); err != nil {
			return err
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			_, err := tx.ExecContext(ctx, `
				INSERT INTO chat_sessions (id, user_id, selected_patient_id)
				VALUES ($1, $2, NULLIF($3, ''))`,
				sessionID, userID, selectedPatient)
			return err
		}

		var (
			storedPatient stdsql.NullString
			transcript    []byte
		)
		err := tx.QueryRowContext(ctx, `
			SELECT selected_patient_id, COALESCE(transcript, '[]'::jsonb)
			FROM chat_sessions
			WHERE id = $1`, sessionID).
			Scan(&storedPatient, &transcript)
		if err != nil {
			return err
		}
		if selectedPatient == "" && storedPatient.Valid {
			selectedPatient = storedPatient.String
		}
		history = decodeTranscript(transcript)
		return nil
	})
	if errors.Is(err, stdsql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := s.agent.Run(ctx, agentic.Request{
		UserID:            userID,
		SessionID:         sessionID,
		Question:          req.Question,
		SelectedPatientID: selectedPatient,
		PatientCount:      patientCount,
		History:           history,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	s.appendTurns(c, userID, sessionID, selectedPatient, req.Question, result)

	resp := gin.H{
		"session_id":  sessionID,
		"status":      result.Status,
		"violations":  result.Violations,
		"displays":    result.Displays,
		"iterations":  result.Iterations,
		"duration_ms": result.Duration.Milliseconds(),
	}
	if result.Query != nil {
		resp["sql"] = result.Query.SQL
		resp["explanation"] = result.Query.Explanation
		resp["confidence"] = result.Query.Confidence
		resp["query_type"] = result.Query.QueryType
		if result.Query.PlotMetadata != nil {
			resp["plot_metadata"] = result.Query.PlotMetadata
		}
		if result.Query.PlotTitle != "" {
			resp["plot_title"] = result.Query.PlotTitle
		}
	}
	c.JSON(http.StatusOK, resp)
}

// appendTurns persists the question and the assistant's answer to the
// session transcript. Best-effort: a failed append degrades follow-up
// context but never fails the answered request.
func (s *Server) appendTurns(c *gin.Context, userID, sessionID, selectedPatient, question string, result *agentic.Result) {
	answer := result.Status
	if result.Query != nil && result.Query.Explanation != "" {
		answer = result.Query.Explanation
	}

	turns, err := json.Marshal([]transcriptTurn{
		{Role: llm.RoleUser, Content: question},
		{Role: llm.RoleAssistant, Content: answer},
	})
	if err != nil {
		return
	}

	ctx := c.Request.Context()
	_ = s.db.WithUserTx(ctx, userID, func(tx *stdsql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE chat_sessions
			SET transcript = COALESCE(transcript, '[]'::jsonb) || $2::jsonb,
			    turn_count = turn_count + 1,
			    selected_patient_id = NULLIF($3, ''),
			    updated_at = now()
			WHERE id = $1`, sessionID, string(turns), selectedPatient)
		return err
	})
}

func decodeTranscript(raw []byte) []llm.Message {
	var turns []transcriptTurn
	if err := json.Unmarshal(raw, &turns); err != nil {
		return nil
	}
	messages := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		if t.Role != llm.RoleUser && t.Role != llm.RoleAssistant {
			continue
		}
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}
	return messages
}
