package api

import (
	stdsql "database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key holding the authenticated user id.
const userIDKey = "labdex.user_id"

// sessionCookie is the browser session cookie name.
const sessionCookie = "labdex_session"

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// requireSession resolves the session token (Authorization: Bearer or the
// session cookie) against the sessions table and injects the user id.
// The lookup runs on the admin pool: authentication precedes the RLS
// scope, which cannot exist before the user is known.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		var (
			userID    string
			expiresAt time.Time
			revokedAt stdsql.NullTime
		)
		err := s.db.AdminDB().QueryRowContext(c.Request.Context(), `
			SELECT user_id, expires_at, revoked_at
			FROM sessions
			WHERE id = $1`, token).
			Scan(&userID, &expiresAt, &revokedAt)
		if errors.Is(err, stdsql.ErrNoRows) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			return
		}
		if revokedAt.Valid || time.Now().After(expiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// currentUser returns the authenticated user id set by requireSession.
func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}
