// Package academyapi implements the academy repositories over the remote REST API.
package academyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/oauth2"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

const (
	defaultTimeout = 15 * time.Second
	// maxErrorBody bounds how much of a failed response is read for message extraction.
	maxErrorBody = 64 << 10

	headerRequestID = "X-Request-Id"
	headerActor     = "X-Usuario-Email"
)

// ClientOptions configures a Client.
type ClientOptions struct {
	BaseURL string
	Timeout time.Duration
	// TokenSource supplies bearer tokens for every call. Optional.
	TokenSource oauth2.TokenSource
	// Transport overrides the base round tripper (tests). Optional.
	Transport http.RoundTripper
	Logger    *slog.Logger
	Extractor *MessageExtractor
}

// Client performs JSON calls against the academy API.
type Client struct {
	base      *url.URL
	http      *http.Client
	logger    *slog.Logger
	extractor *MessageExtractor
}

// NewClient validates opts and builds a Client.
func NewClient(opts ClientOptions) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, errors.New("academy API base URL is required")
	}
	base, err := url.Parse(strings.TrimSuffix(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse academy API base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("academy API base URL must use http or https, got %q", base.Scheme)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if opts.TokenSource != nil {
		transport = &oauth2.Transport{Source: opts.TokenSource, Base: transport}
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = DefaultMessageExtractor()
	}

	return &Client{
		base:      base,
		http:      &http.Client{Timeout: timeout, Transport: transport, Jar: jar},
		logger:    logger.With("component", "academyapi"),
		extractor: extractor,
	}, nil
}

type actorKey struct{}

// WithActor records the e-mail of the signed-in user so calls carry it to the API for auditing.
func WithActor(ctx context.Context, email string) context.Context {
	email = strings.TrimSpace(email)
	if email == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, email)
}

func actorFrom(ctx context.Context) string {
	v, _ := ctx.Value(actorKey{}).(string)
	return v
}

// call describes one API request.
type call struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// do executes c and decodes a JSON response into out (when non-nil).
// Non-2xx answers become *apperrors.AppError wrapping an *APIError.
func (cl *Client) do(ctx context.Context, c call, out any) error {
	req, err := cl.newRequest(ctx, c)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Unable to build the request.")
	}

	start := time.Now()
	resp, err := cl.http.Do(req)
	if err != nil {
		cl.logger.WarnContext(ctx, "academy api call failed",
			"method", c.Method, "path", c.Path, "error", err, "duration", time.Since(start))
		return apperrors.FromTransport(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			cl.logger.DebugContext(ctx, "close response body", "error", closeErr)
		}
	}()

	cl.logger.DebugContext(ctx, "academy api call",
		"method", c.Method, "path", c.Path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return cl.failure(ctx, c, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "The academy service returned an unreadable response.")
	}
	return nil
}

func (cl *Client) newRequest(ctx context.Context, c call) (*http.Request, error) {
	u := cl.base.JoinPath(c.Path)
	if len(c.Query) > 0 {
		u.RawQuery = c.Query.Encode()
	}

	var body io.Reader
	if c.Body != nil {
		buf, err := json.Marshal(c.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", c.Method, c.Path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestID, uuid.NewString())
	if actor := actorFrom(ctx); actor != "" {
		req.Header.Set(headerActor, actor)
	}
	return req, nil
}

func (cl *Client) failure(ctx context.Context, c call, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{
		Method:  c.Method,
		Path:    c.Path,
		Status:  resp.StatusCode,
		Message: cl.extractor.Extract(body, resp.Header.Get("Content-Type")),
		Body:    body,
	}
	cl.logger.WarnContext(ctx, "academy api error",
		"method", c.Method, "path", c.Path, "status", resp.StatusCode, "message", apiErr.Message)
	return apperrors.FromStatus(resp.StatusCode, apiErr.Message, apiErr)
}

// get fetches path into out.
func (cl *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return cl.do(ctx, call{Method: http.MethodGet, Path: path, Query: query}, out)
}

// send issues a mutating call with an optional JSON body.
func (cl *Client) send(ctx context.Context, method, path string, body, out any) error {
	return cl.do(ctx, call{Method: method, Path: path, Body: body}, out)
}

// listPage fetches one page of a list endpoint.
func listPage[T any](
	ctx context.Context,
	cl *Client,
	path string,
	req academy.PageRequest,
) (*academy.Page[T], error) {
	req = req.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("size", strconv.Itoa(req.Size))

	var page academy.Page[T]
	if err := cl.get(ctx, path, q, &page); err != nil {
		return nil, err
	}
	if page.Content == nil {
		page.Content = []T{}
	}
	return &page, nil
}

// listAll fetches a plain JSON array (sub-resource endpoints that are not paged).
func listAll[T any](ctx context.Context, cl *Client, path string) ([]T, error) {
	var items []T
	if err := cl.get(ctx, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Ping checks that the API answers a cheap list request.
func (cl *Client) Ping(ctx context.Context) error {
	_, err := listPage[json.RawMessage](ctx, cl, "/alunos", academy.PageRequest{Page: 0, Size: 1})
	return err
}

func idPath(parts ...any) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte('/')
		switch v := p.(type) {
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		case string:
			b.WriteString(strings.Trim(v, "/"))
		default:
			b.WriteString(fmt.Sprint(v))
		}
	}
	return b.String()
}
