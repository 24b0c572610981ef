package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
	mocks "github.com/dojoworks/dojo-admin/internal/mocks/auth"
	"github.com/dojoworks/dojo-admin/internal/ports"
)

// mockSessionStore is a test helper for testing session store errors.
type mockSessionStore struct {
	saveFunc   func(context.Context, domainauth.Session) error
	getFunc    func(context.Context, string) (domainauth.Session, error)
	deleteFunc func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domainauth.Session{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

var testRoles = mocks.StaticRoleMapper{ //nolint:gochecknoglobals // test fixture
	"senseis":     domainauth.RoleAdmin,
	"instructors": domainauth.RoleInstructor,
	"students":    domainauth.RoleStudent,
}

func newTestAuthService(provider ports.AuthProvider, sessions ports.SessionStore, idle time.Duration) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Provider:    provider,
		Sessions:    sessions,
		Roles:       testRoles,
		IdleTimeout: idle,
	})
}

func TestAuthService_BeginLogin(t *testing.T) {
	svc := newTestAuthService(mocks.NewMockAuthProvider(), mocks.NewMemorySessionStore(), 0)

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.Equal(t, "state-1", result.State)
	assert.Equal(t, "nonce-1", result.Nonce)

	_, err = svc.BeginLogin(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect URL is required")
}

func TestAuthService_BeginLogin_ProviderError(t *testing.T) {
	provider := &mocks.MockAuthProvider{
		BeginFunc: func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
			return "", "", "", errors.New("provider error")
		},
	}
	svc := newTestAuthService(provider, mocks.NewMemorySessionStore(), 0)

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/auth/callback")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "begin auth flow")
	assert.Contains(t, err.Error(), "provider error")
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := newTestAuthService(mocks.NewMockAuthProvider(), sessions, 15*time.Minute)
	fixed := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)

	sess := result.Session
	assert.Len(t, sess.ID, 36)
	assert.Equal(t, "sensei-1", sess.UserID)
	assert.Equal(t, "sensei@dojo.test", sess.Email)
	assert.Equal(t, "Helio", sess.FirstName)
	assert.Equal(t, domainauth.RoleInstructor, sess.Role)
	assert.Equal(t, fixed, sess.LastSeen)

	stored, err := sessions.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Email, stored.Email)
}

func TestAuthService_CompleteLogin_MapsRoles(t *testing.T) {
	tests := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{name: "admin group", groups: []string{"senseis"}, want: domainauth.RoleAdmin},
		{name: "student group", groups: []string{"students"}, want: domainauth.RoleStudent},
		{name: "unknown group", groups: []string{"visitors"}, want: domainauth.RoleGuest},
		{name: "no groups", want: domainauth.RoleGuest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mocks.MockAuthProvider{DefaultUser: domainauth.Identity{
				UserID: "u-1",
				Email:  "u@dojo.test",
				Groups: tt.groups,
			}}
			svc := newTestAuthService(provider, mocks.NewMemorySessionStore(), 0)

			result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Session.Role)
		})
	}
}

func TestAuthService_CompleteLogin_RequiresParameters(t *testing.T) {
	tests := []struct {
		name  string
		input CompleteLoginInput
		want  string
	}{
		{name: "code", input: CompleteLoginInput{State: "s", Nonce: "n"}, want: "authorization code is required"},
		{name: "state", input: CompleteLoginInput{Code: "c", Nonce: "n"}, want: "state parameter is required"},
		{name: "nonce", input: CompleteLoginInput{Code: "c", State: "s"}, want: "nonce parameter is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(mocks.NewMockAuthProvider(), mocks.NewMemorySessionStore(), 0)
			result, err := svc.CompleteLogin(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAuthService_CompleteLogin_Failures(t *testing.T) {
	t.Run("exchange error", func(t *testing.T) {
		provider := &mocks.MockAuthProvider{
			ExchangeFunc: func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
				return domainauth.Identity{}, errors.New("exchange error")
			},
		}
		svc := newTestAuthService(provider, mocks.NewMemorySessionStore(), 0)
		_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exchange authorization code")
		assert.Contains(t, err.Error(), "exchange error")
	})

	t.Run("save error", func(t *testing.T) {
		sessions := &mockSessionStore{
			saveFunc: func(_ context.Context, _ domainauth.Session) error { return errors.New("save error") },
		}
		svc := newTestAuthService(mocks.NewMockAuthProvider(), sessions, 0)
		_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save session")
	})
}

func TestAuthService_GetSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		session  domainauth.Session
		wantErr  error
		wantKept bool
	}{
		{
			name: "live",
			session: domainauth.Session{
				ID: "live", Role: domainauth.RoleInstructor,
				ExpiresAt: now.Add(time.Hour), LastSeen: now.Add(-5 * time.Minute),
			},
			wantKept: true,
		},
		{
			name: "expired",
			session: domainauth.Session{
				ID: "expired", ExpiresAt: now.Add(-time.Minute), LastSeen: now.Add(-2 * time.Minute),
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "idle",
			session: domainauth.Session{
				ID: "idle", ExpiresAt: now.Add(time.Hour), LastSeen: now.Add(-16 * time.Minute),
			},
			wantErr: ErrSessionExpired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mocks.NewMemorySessionStore()
			require.NoError(t, sessions.Save(ctx, tt.session))
			svc := newTestAuthService(mocks.NewMockAuthProvider(), sessions, 15*time.Minute)
			svc.now = func() time.Time { return now }

			got, err := svc.GetSession(ctx, tt.session.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.session.ID, got.ID)
			}

			_, getErr := sessions.Get(ctx, tt.session.ID)
			if tt.wantKept {
				assert.NoError(t, getErr)
			} else {
				assert.Equal(t, mocks.ErrNotFound, getErr)
			}
		})
	}
}

func TestAuthService_GetSession_MissingOrEmpty(t *testing.T) {
	svc := newTestAuthService(mocks.NewMockAuthProvider(), mocks.NewMemorySessionStore(), 0)

	_, err := svc.GetSession(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID is required")

	_, err = svc.GetSession(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get session")
}

func TestAuthService_Touch(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewMemorySessionStore()
	svc := newTestAuthService(mocks.NewMockAuthProvider(), sessions, 10*time.Minute)
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start.Add(9 * time.Minute) }

	sess := domainauth.Session{ID: "s1", ExpiresAt: start.Add(time.Hour), LastSeen: start}
	require.NoError(t, sessions.Save(ctx, sess))

	require.NoError(t, svc.Touch(ctx, &sess))
	assert.Equal(t, start.Add(9*time.Minute), sess.LastSeen)
	assert.Equal(t, start.Add(19*time.Minute), svc.IdleDeadline(sess))

	stored, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess.LastSeen, stored.LastSeen)

	assert.Error(t, svc.Touch(ctx, nil))
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewMemorySessionStore()
	svc := newTestAuthService(mocks.NewMockAuthProvider(), sessions, 0)
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, svc.Logout(ctx, "s1"))
	_, err := sessions.Get(ctx, "s1")
	assert.Equal(t, mocks.ErrNotFound, err)

	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestAuthService_Logout_DeleteError(t *testing.T) {
	sessions := &mockSessionStore{
		deleteFunc: func(_ context.Context, _ string) error { return errors.New("delete error") },
	}
	svc := newTestAuthService(mocks.NewMockAuthProvider(), sessions, 0)

	err := svc.Logout(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete session")
}

func TestGenerateSessionID(t *testing.T) {
	id1 := generateSessionID()
	id2 := generateSessionID()

	assert.Len(t, id1, 36)
	assert.NotEqual(t, id1, id2)
}
