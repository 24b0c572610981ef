package academyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// fakeAPI records requests and answers with a per-route handler.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]http.HandlerFunc
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{routes: map[string]http.HandlerFunc{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		h, ok := f.routes[r.Method+" "+r.URL.Path]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) handle(pattern string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[pattern] = h
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, baseURL string, ts oauth2.TokenSource) *Client {
	t.Helper()
	cl, err := NewClient(ClientOptions{BaseURL: baseURL + "/api/", Timeout: 2 * time.Second, TokenSource: ts})
	require.NoError(t, err)
	return cl
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(ClientOptions{})
	require.Error(t, err)

	_, err = NewClient(ClientOptions{BaseURL: "ftp://academy"})
	require.Error(t, err)
}

func TestStudentRepo_List_SendsPageAndSize(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("GET /api/alunos", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"content":       []map[string]any{{"id": 1, "nome": "João Silva", "faixa": "AZUL"}},
			"totalPages":    3,
			"totalElements": 21,
		})
	})

	repo := NewStudentRepo(newTestClient(t, srv.URL, nil))
	page, err := repo.List(context.Background(), academy.PageRequest{Page: 2, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, "page=2&size=10", api.last().Query)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "João Silva", page.Content[0].Name)
	assert.Equal(t, academy.BeltBlue, page.Content[0].Belt)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 21, page.TotalElements)
	assert.NotEmpty(t, api.last().Header.Get(headerRequestID))
}

func TestStudentRepo_List_NullContentBecomesEmpty(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("GET /api/alunos", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"content": nil, "totalPages": 0, "totalElements": 0})
	})

	page, err := NewStudentRepo(newTestClient(t, srv.URL, nil)).List(context.Background(), academy.FirstPage(10))
	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
}

func TestClient_ErrorMessageExtractedFromBody(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("POST /api/alunos", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"timestamp": "2025-01-01T10:00:00",
			"status":    409,
			"message":   "CPF já cadastrado",
		})
	})

	_, err := NewStudentRepo(newTestClient(t, srv.URL, nil)).Create(context.Background(), academy.StudentRequest{Name: "Ana"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "CPF já cadastrado", apperrors.Message(err, ""))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Contains(t, string(apiErr.Body), "CPF")
}

func TestClient_ErrorWithoutBodyFallsBack(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("GET /api/aulas/9", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewClassRepo(newTestClient(t, srv.URL, nil)).GetByID(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Equal(t, apperrors.MsgUnavailable, apperrors.Message(err, ""))
}

func TestClient_TransportFailureIsUpstream(t *testing.T) {
	t.Parallel()

	_, srv := newFakeAPI(t)
	cl := newTestClient(t, srv.URL, nil)
	srv.Close()

	_, err := NewGroupRepo(cl).List(context.Background(), academy.FirstPage(10))
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestClient_BearerTokenAndActor(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("PATCH /api/alunos/7/promover", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "faixa": "ROXA"})
	})

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "secret-token", TokenType: "Bearer"})
	repo := NewStudentRepo(newTestClient(t, srv.URL, ts))
	ctx := WithActor(context.Background(), "sensei@dojo.test")

	st, err := repo.Promote(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, academy.BeltPurple, st.Belt)

	req := api.last()
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.Equal(t, "sensei@dojo.test", req.Header.Get(headerActor))
}

func TestLinkingRoutes(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	noContent := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }
	api.handle("PATCH /api/turmas/3/alunos/8", noContent)
	api.handle("DELETE /api/turmas/3/alunos/8", noContent)
	api.handle("PATCH /api/alunos/8/responsaveis/5", noContent)
	api.handle("DELETE /api/alunos/8/responsaveis/5", noContent)

	cl := newTestClient(t, srv.URL, nil)
	ctx := context.Background()
	require.NoError(t, NewGroupRepo(cl).AddStudent(ctx, 3, 8))
	require.NoError(t, NewGroupRepo(cl).RemoveStudent(ctx, 3, 8))
	require.NoError(t, NewStudentRepo(cl).LinkGuardian(ctx, 8, 5))
	require.NoError(t, NewStudentRepo(cl).UnlinkGuardian(ctx, 8, 5))
	assert.Equal(t, "DELETE", api.last().Method)
}

func TestStatusPatches(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("PATCH /api/aulas/4/status", func(w http.ResponseWriter, r *http.Request) {
		var body academy.ClassStatusRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, map[string]any{"id": 4, "status": body.Status})
	})
	api.handle("PATCH /api/inscricoes/2/status", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 2, "status": "INATIVA"})
	})

	cl := newTestClient(t, srv.URL, nil)
	class, err := NewClassRepo(cl).SetStatus(context.Background(), 4, academy.ClassCanceled)
	require.NoError(t, err)
	assert.Equal(t, academy.ClassCanceled, class.Status)
	assert.JSONEq(t, `{"status":"CANCELADA"}`, strings.TrimSpace(api.last().Body))

	enr, err := NewEnrollmentRepo(cl).SetStatus(context.Background(), 2, academy.EnrollmentInactive)
	require.NoError(t, err)
	assert.Equal(t, academy.EnrollmentInactive, enr.Status)
}

func TestAttendanceRepo_Record(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("POST /api/presencas", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 11, "aulaId": 4, "alunoId": 8, "presente": true})
	})

	rec, err := NewAttendanceRepo(newTestClient(t, srv.URL, nil)).Record(context.Background(), academy.AttendanceRequest{
		ClassID: 4, StudentID: 8, Present: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), rec.ID)
	assert.JSONEq(t, `{"aulaId":4,"alunoId":8,"presente":true}`, strings.TrimSpace(api.last().Body))
}

func TestStudentRepo_FindByEmailEscapes(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.handle("GET /api/alunos/email/ana+kid@dojo.test", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 3, "email": "ana+kid@dojo.test"})
	})

	st, err := NewStudentRepo(newTestClient(t, srv.URL, nil)).FindByEmail(context.Background(), "ana+kid@dojo.test")
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.ID)
}

func TestTokenConfig_TokenSource(t *testing.T) {
	t.Parallel()

	assert.Nil(t, TokenConfig{}.TokenSource(context.Background()))

	ts := TokenConfig{Token: " abc "}.TokenSource(context.Background())
	require.NotNil(t, ts)
	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
}

func TestTokenConfig_ClientCredentials(t *testing.T) {
	t.Parallel()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "cc-token", "token_type": "bearer", "expires_in": 3600})
	}))
	t.Cleanup(tokenSrv.Close)

	ts := TokenConfig{ClientID: "dash", ClientSecret: "s3cret", TokenURL: tokenSrv.URL}.TokenSource(context.Background())
	require.NotNil(t, ts)
	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "cc-token", tok.AccessToken)
}
