package academyapi

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenConfig selects how the dashboard authenticates to the academy API.
// ClientID/ClientSecret/TokenURL take precedence over a static Token.
type TokenConfig struct {
	Token        string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
	HTTPClient   *http.Client
}

// TokenSource returns the configured token source, or nil when the API is unauthenticated.
func (c TokenConfig) TokenSource(ctx context.Context) oauth2.TokenSource {
	if c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != "" {
		if c.HTTPClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)
		}
		cc := &clientcredentials.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			TokenURL:     c.TokenURL,
			Scopes:       c.Scopes,
		}
		return cc.TokenSource(ctx)
	}
	if tok := strings.TrimSpace(c.Token); tok != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"})
	}
	return nil
}
