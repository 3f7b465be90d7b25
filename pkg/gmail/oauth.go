package gmail

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Connector runs the OAuth flow and builds per-user Gmail services.
type Connector struct {
	config *oauth2.Config
	states *StateStore
	tokens *TokenStore
}

// NewConnector wires the OAuth config for the read-only Gmail scope.
func NewConnector(clientID, clientSecret, redirectURL string, states *StateStore, tokens *TokenStore) *Connector {
	return &Connector{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{gmailapi.GmailReadonlyScope},
			Endpoint:     google.Endpoint,
		},
		states: states,
		tokens: tokens,
	}
}

// AuthURL issues a one-time state for userID and returns the consent URL.
// offline access + consent prompt make Google return a refresh token.
func (c *Connector) AuthURL(userID string) (string, error) {
	state, err := c.states.Issue(userID)
	if err != nil {
		return "", err
	}
	url := c.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
	return url, nil
}

// HandleCallback consumes the state, exchanges the code and persists the
// tokens. Returns the user the flow belongs to.
func (c *Connector) HandleCallback(ctx context.Context, state, code string) (string, error) {
	userID, ok := c.states.Consume(state)
	if !ok {
		return "", fmt.Errorf("oauth state invalid or expired")
	}

	tok, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange oauth code: %w", err)
	}
	if err := c.tokens.Save(ctx, userID, tok); err != nil {
		return "", err
	}
	return userID, nil
}

// Service builds a Gmail service for userID backed by a refreshing,
// persisting token source.
func (c *Connector) Service(ctx context.Context, userID string) (*gmailapi.Service, error) {
	tok, err := c.tokens.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	src := &persistingSource{
		userID: userID,
		store:  c.tokens,
		src:    c.config.TokenSource(ctx, tok),
		last:   tok,
	}
	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(tok, src)))
	if err != nil {
		return nil, fmt.Errorf("build gmail service: %w", err)
	}
	return svc, nil
}
