package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdex/labdex/pkg/gmail"
	"github.com/labdex/labdex/pkg/jobs"
	"github.com/labdex/labdex/pkg/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(securityHeaders())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRequireSession_MissingToken(t *testing.T) {
	s := &Server{}
	r := gin.New()
	r.GET("/protected", s.requireSession(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerToken(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", bearerToken(c))

	c.Request.Header.Set("Authorization", "Basic abc123")
	assert.Equal(t, "", bearerToken(c))

	c.Request.Header.Del("Authorization")
	assert.Equal(t, "", bearerToken(c))
}

func TestGetJob(t *testing.T) {
	registry := jobs.NewRegistry(time.Hour)
	job := registry.Submit(context.Background(), "gmail_scan", func(ctx context.Context, h *jobs.Handle) (interface{}, error) {
		return "done", nil
	})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if j, err := registry.Get(job.ID); err == nil && j.Status == jobs.StatusCompleted {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	s := &Server{registry: registry}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: job.ID}}
	s.GetJob(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got jobs.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, jobs.StatusCompleted, got.Status)
	assert.Equal(t, "done", got.Result)
}

func TestGetJob_Unknown(t *testing.T) {
	s := &Server{registry: jobs.NewRegistry(time.Hour)}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	s.GetJob(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelJob_NotCancellable(t *testing.T) {
	s := &Server{registry: jobs.NewRegistry(time.Hour)}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	s.CancelJob(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDecodeTranscript(t *testing.T) {
	raw := []byte(`[
		{"role":"user","content":"show my hemoglobin"},
		{"role":"assistant","content":"Here is the trend."},
		{"role":"tool","content":"ignored"}
	]`)
	messages := decodeTranscript(raw)
	require.Len(t, messages, 2)
	assert.Equal(t, llm.RoleUser, messages[0].Role)
	assert.Equal(t, llm.RoleAssistant, messages[1].Role)

	assert.Nil(t, decodeTranscript([]byte("not json")))
	assert.Empty(t, decodeTranscript([]byte("[]")))
}

func TestToAPIAttachments(t *testing.T) {
	assert.Nil(t, toAPIAttachments(nil))

	out := toAPIAttachments([]gmail.Attachment{
		{Filename: "r.pdf", MimeType: "application/pdf", AttachmentID: "a1", Size: 42},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "r.pdf", out[0].Filename)
	assert.Equal(t, int64(42), out[0].Size)
}
