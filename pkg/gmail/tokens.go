package gmail

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// ErrNotConnected is returned when a user has no stored Gmail tokens.
var ErrNotConnected = errors.New("gmail: mailbox not connected")

// TokenStore persists OAuth tokens per user on the admin pool. Google omits
// refresh_token on re-grants, so Save keeps the stored one when the new
// token carries none.
type TokenStore struct {
	db *stdsql.DB
}

// NewTokenStore creates a store over the admin pool.
func NewTokenStore(db *stdsql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Save upserts a user's token, preserving a previously stored refresh token.
func (s *TokenStore) Save(ctx context.Context, userID string, tok *oauth2.Token) error {
	var expiry any
	if !tok.Expiry.IsZero() {
		expiry = tok.Expiry
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gmail_tokens (user_id, access_token, refresh_token, token_type, expiry)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = CASE
				WHEN EXCLUDED.refresh_token <> '' THEN EXCLUDED.refresh_token
				ELSE gmail_tokens.refresh_token
			END,
			token_type = EXCLUDED.token_type,
			expiry = EXCLUDED.expiry,
			updated_at = now()`,
		userID, tok.AccessToken, tok.RefreshToken, tok.TokenType, expiry)
	if err != nil {
		return fmt.Errorf("save gmail token: %w", err)
	}
	return nil
}

// Load returns the stored token for userID.
func (s *TokenStore) Load(ctx context.Context, userID string) (*oauth2.Token, error) {
	var (
		tok    oauth2.Token
		expiry stdsql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT access_token, refresh_token, token_type, expiry
		FROM gmail_tokens WHERE user_id = $1`, userID).
		Scan(&tok.AccessToken, &tok.RefreshToken, &tok.TokenType, &expiry)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, ErrNotConnected
	}
	if err != nil {
		return nil, fmt.Errorf("load gmail token: %w", err)
	}
	if expiry.Valid {
		tok.Expiry = expiry.Time
	}
	return &tok, nil
}

// persistingSource wraps a refreshing TokenSource and writes every new
// token back to the store, so a refresh done mid-sweep survives restarts.
type persistingSource struct {
	userID string
	store  *TokenStore
	src    oauth2.TokenSource

	mu   sync.Mutex
	last *oauth2.Token
}

// Token implements oauth2.TokenSource.
func (p *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.src.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	changed := p.last == nil || p.last.AccessToken != tok.AccessToken
	p.last = tok
	p.mu.Unlock()

	if changed {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := p.store.Save(ctx, p.userID, tok); err != nil {
			// The refresh itself succeeded; keep serving the token.
			slog.Warn("Refreshed Gmail token not persisted", "error", err)
		}
	}
	return tok, nil
}
