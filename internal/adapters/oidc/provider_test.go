package oidc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dojoworks/dojo-admin/internal/ports"
)

// newDiscoveryServer serves a minimal discovery document whose issuer is the server itself.
func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(DiscoveryDocument{
			Issuer:                srv.URL,
			AuthorizationEndpoint: "https://idp.dojo.test/auth",
			TokenEndpoint:         srv.URL + "/token",
			UserinfoEndpoint:      srv.URL + "/userinfo",
			JwksURI:               srv.URL + "/jwks",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func createTestProvider(t *testing.T, groupsClaim string) *Provider {
	t.Helper()
	srv := newDiscoveryServer(t)
	provider, err := NewProvider(ProviderConfig{
		ClientID:     "dojo-admin",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scope:        "openid profile email",
		DiscoveryURL: srv.URL + "/.well-known/openid-configuration",
		GroupsClaim:  groupsClaim,
	})
	require.NoError(t, err)
	return provider
}

func TestNewProvider_Success(t *testing.T) {
	provider := createTestProvider(t, "")
	assert.Equal(t, "https://idp.dojo.test/auth", provider.config.Endpoint.AuthURL)
	assert.Equal(t, DefaultGroupsClaim, provider.groupsClaim)
}

func TestNewProvider_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config ProviderConfig
		errMsg string
	}{
		{
			name:   "missing client ID",
			config: ProviderConfig{ClientSecret: "s", RedirectURL: "http://x/cb", DiscoveryURL: "http://idp"},
			errMsg: "client ID is required",
		},
		{
			name:   "missing client secret",
			config: ProviderConfig{ClientID: "c", RedirectURL: "http://x/cb", DiscoveryURL: "http://idp"},
			errMsg: "client secret is required",
		},
		{
			name:   "missing redirect URL",
			config: ProviderConfig{ClientID: "c", ClientSecret: "s", DiscoveryURL: "http://idp"},
			errMsg: "redirect URL is required",
		},
		{
			name:   "missing discovery URL",
			config: ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "http://x/cb"},
			errMsg: "discovery URL is required",
		},
		{
			name: "bad groups claim",
			config: ProviderConfig{
				ClientID: "c", ClientSecret: "s", RedirectURL: "http://x/cb", DiscoveryURL: "http://idp",
				GroupsClaim: "realm_access.[",
			},
			errMsg: "invalid groups claim",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_Begin(t *testing.T) {
	provider := createTestProvider(t, "")

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{RedirectURL: "/auth/callback"})
	require.NoError(t, err)
	assert.Len(t, state, 32)
	assert.Len(t, nonce, 32)
	assert.Contains(t, authURL, "https://idp.dojo.test/auth")
	assert.Contains(t, authURL, "client_id=dojo-admin")
	assert.Contains(t, authURL, "state="+state)
	assert.Contains(t, authURL, "nonce="+nonce)

	_, _, _, err = provider.Begin(context.Background(), ports.BeginInput{})
	require.Error(t, err)
}

func TestProvider_Exchange_ValidationErrors(t *testing.T) {
	provider := createTestProvider(t, "")

	tests := []struct {
		name   string
		input  ports.ExchangeInput
		errMsg string
	}{
		{name: "missing code", input: ports.ExchangeInput{State: "s", Nonce: "n"}, errMsg: "authorization code is required"},
		{name: "missing state", input: ports.ExchangeInput{Code: "c", Nonce: "n"}, errMsg: "state is required"},
		{name: "missing nonce", input: ports.ExchangeInput{Code: "c", State: "s"}, errMsg: "nonce is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Exchange(context.Background(), tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_Exchange_TokenEndpointFailure(t *testing.T) {
	provider := createTestProvider(t, "")

	_, err := provider.Exchange(context.Background(), ports.ExchangeInput{Code: "c", State: "s", Nonce: "n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange code for token")
}

func TestProvider_mapClaims(t *testing.T) {
	provider := createTestProvider(t, "realm_access.roles")

	f := provider.mapClaims(map[string]any{
		"sub":          "u-1",
		"email":        "ana@dojo.test",
		"given_name":   "Ana",
		"family_name":  "Lima",
		"realm_access": map[string]any{"roles": []any{"dojo-coordinators", "offline_access"}},
	})
	assert.Equal(t, "u-1", f.userID)
	assert.Equal(t, "ana@dojo.test", f.email)
	assert.Equal(t, "Ana", f.givenName)
	assert.Equal(t, []string{"dojo-coordinators", "offline_access"}, f.groups)
}

func TestProvider_groups_StringClaim(t *testing.T) {
	provider := createTestProvider(t, "")

	assert.Equal(t, []string{"a", "b"}, provider.groups(map[string]any{"groups": "a, b"}))
	assert.Nil(t, provider.groups(map[string]any{}))
}

func TestFillMissing(t *testing.T) {
	f := idFields{userID: "keep", groups: []string{"x"}}
	fillMissing(&f, idFields{userID: "other", email: "e@dojo.test", givenName: "G", groups: []string{"y"}})
	assert.Equal(t, "keep", f.userID)
	assert.Equal(t, "e@dojo.test", f.email)
	assert.Equal(t, "G", f.givenName)
	assert.Equal(t, []string{"x"}, f.groups)
}

func TestGetIDTokenFromToken(t *testing.T) {
	tok := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": "abc.def.ghi"})
	idTok, err := getIDTokenFromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", idTok)

	_, err = getIDTokenFromToken((&oauth2.Token{}).WithExtra(map[string]any{"not_id": "x"}))
	require.ErrorContains(t, err, "missing id_token")

	_, err = getIDTokenFromToken(nil)
	require.ErrorContains(t, err, "nil token")
}

func TestGenerateRandomString(t *testing.T) {
	a, err := generateRandomString(16)
	require.NoError(t, err)
	b, err := generateRandomString(16)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}
