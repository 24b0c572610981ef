package devauth

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dojoworks/dojo-admin/internal/ports"
)

func TestProvider_BeginAndExchange(t *testing.T) {
	prov, err := NewProvider(Config{
		UserID:    "dev-user",
		Email:     "dev@dojo.test",
		FirstName: "Dev",
		Groups:    []string{"dojo-coordinators"},
	})
	require.NoError(t, err)

	authURL, state, nonce, err := prov.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	require.NoError(t, err)
	assert.Len(t, state, 24)
	assert.Len(t, nonce, 24)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "/auth/callback", u.Path)
	assert.Equal(t, state, u.Query().Get("state"))

	fixed := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	prov.now = func() time.Time { return fixed }

	id, err := prov.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	require.NoError(t, err)
	assert.Equal(t, "dev-user", id.UserID)
	assert.Equal(t, []string{"dojo-coordinators"}, id.Groups)
	assert.Equal(t, fixed.Add(8*time.Hour), id.ExpiresAt)
}

func TestProvider_Validation(t *testing.T) {
	_, err := NewProvider(Config{Email: "dev@dojo.test"})
	require.Error(t, err)

	_, err = NewProvider(Config{UserID: "dev"})
	require.Error(t, err)

	prov, err := NewProvider(Config{UserID: "dev", Email: "dev@dojo.test"})
	require.NoError(t, err)
	_, err = prov.Exchange(context.Background(), ports.ExchangeInput{})
	require.Error(t, err)
}
