// Package api implements the resilient storefront API client. Each
// logical operation is tried against an ordered list of candidate
// endpoint paths, tolerating backend route drift, with uniform handling
// of authentication failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"azushop-client/internal/domain"
	"azushop-client/internal/notify"
	"azushop-client/internal/observability"
)

// Client issues authenticated requests to the storefront backend
type Client struct {
	baseURL       string
	httpClient    *http.Client
	sessions      domain.SessionStore
	events        notify.Publisher
	ops           map[string]Operation
	limiter       *rate.Limiter
	timeout       time.Duration
	healthTimeout time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout sets the per-candidate attempt timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithHealthTimeout sets the connectivity probe timeout
func WithHealthTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.healthTimeout = timeout }
}

// WithRateLimit bounds the rate of outgoing request attempts
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst) }
}

// WithOperations replaces the operation registry
func WithOperations(ops map[string]Operation) Option {
	return func(c *Client) { c.ops = ops }
}

// New creates a Client against the given base URL
func New(baseURL string, sessions domain.SessionStore, events notify.Publisher, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{},
		sessions:      sessions,
		events:        events,
		ops:           Operations(),
		limiter:       rate.NewLimiter(rate.Limit(20), 40),
		timeout:       5 * time.Second,
		healthTimeout: 3 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request carries the per-call inputs for an operation
type Request struct {
	// Body is JSON-encoded unless nil
	Body any

	// Query parameters appended to every candidate path
	Query url.Values

	// PathArgs fill %s verbs in the operation's path templates
	PathArgs []any

	// RawBody is the payload for multipart/binary operations. Held as
	// bytes so it can be re-sent to each candidate.
	RawBody     []byte
	ContentType string
}

// Call performs one logical operation, trying each candidate path in
// order. Candidates are attempted strictly sequentially; the first 2xx
// wins, a 401 aborts immediately, anything else moves to the next
// candidate. Returns the parsed JSON payload.
func (c *Client) Call(ctx context.Context, name string, req *Request) (json.RawMessage, error) {
	op, ok := c.ops[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	if req == nil {
		req = &Request{}
	}

	// Logout is fail-safe: local state is cleared and the logout event
	// emitted no matter how the remote call ends.
	if op.Logout {
		defer func() {
			c.sessions.Clear()
			c.events.Publish(notify.Event{Type: notify.EventLogout})
		}()
	}

	var jsonBody []byte
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		jsonBody = encoded
	}

	ctx = observability.WithOperation(ctx, op.Name)

	var lastErr error
	for i, template := range op.Paths {
		path := template
		if len(req.PathArgs) > 0 {
			path = fmt.Sprintf(template, req.PathArgs...)
		}

		status, body, contentType, err := c.attempt(ctx, op, path, jsonBody, req)
		if err != nil {
			lastErr = err
			observability.FromContext(ctx).Warn("endpoint attempt failed",
				"path", path, "error", err.Error())
			continue
		}

		if status == http.StatusUnauthorized {
			// The path was reached but the credentials were rejected;
			// trying other candidates with the same token is pointless.
			observability.AuthFailuresTotal.Inc()
			c.sessions.Clear()
			c.events.Publish(notify.Event{Type: notify.EventAuthError})
			observability.FromContext(ctx).Warn("authentication rejected", "path", path)
			return nil, ErrUnauthorized
		}

		if status < 200 || status > 299 {
			lastErr = &APIError{StatusCode: status, Message: errorMessage(body, contentType, status)}
			observability.FromContext(ctx).Warn("endpoint returned error status",
				"path", path, "status", status)
			continue
		}

		observability.APIFallbackDepth.WithLabelValues(op.Name).Observe(float64(i + 1))

		payload, err := parsePayload(op, body, contentType)
		if err != nil {
			return nil, err
		}

		if op.Identity {
			user, token, reason := extractIdentity(payload)
			if reason != "" {
				observability.FromContext(ctx).Error("identity response malformed", "reason", reason)
				return nil, &MalformedResponseError{Operation: op.Name, Reason: reason}
			}
			c.sessions.Set(user, token)
			c.events.Publish(notify.Event{Type: notify.EventLoginSuccess, User: &user})
		} else if op.Authenticated {
			// Rolling expiry. Extend is conditioned on a session still
			// existing, so a success resolving after logout cannot
			// resurrect the cleared session.
			c.sessions.Extend()
		}

		return payload, nil
	}

	failure := &AllEndpointsFailedError{
		Operation: op.Name,
		Attempts:  len(op.Paths),
		LastErr:   lastErr,
	}
	observability.APICallFailuresTotal.WithLabelValues(op.Name, "all_endpoints_failed").Inc()
	observability.FromContext(ctx).Error("all endpoints failed", "attempts", len(op.Paths))
	return nil, failure
}

// Health probes backend connectivity with a short timeout
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("backend not available: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}
	return nil
}

// attempt performs a single network attempt against one candidate path.
// The returned error covers network-level failure only; HTTP status
// handling belongs to the caller.
func (c *Client) attempt(ctx context.Context, op Operation, path string, jsonBody []byte, req *Request) (int, []byte, string, error) {
	ctx = observability.WithEndpoint(ctx, path)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	switch {
	case op.Multipart && req.RawBody != nil:
		body = bytes.NewReader(req.RawBody)
	case jsonBody != nil:
		body = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, op.Method, target, body)
	if err != nil {
		return 0, nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if op.Multipart {
		// Content type carries the multipart boundary; never force JSON here
		if req.ContentType != "" {
			httpReq.Header.Set("Content-Type", req.ContentType)
		}
	} else if jsonBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Absence of a session means no auth header, not an error
	if sess, ok := c.sessions.Get(); ok {
		httpReq.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		observability.APIRequestsTotal.WithLabelValues(op.Name, path, "error").Inc()
		return 0, nil, "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.APIRequestsTotal.WithLabelValues(op.Name, path, "error").Inc()
		return 0, nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	status := strconv.Itoa(resp.StatusCode)
	observability.APIRequestsTotal.WithLabelValues(op.Name, path, status).Inc()
	observability.APIRequestDuration.WithLabelValues(op.Name, path, status).Observe(time.Since(start).Seconds())

	return resp.StatusCode, payload, resp.Header.Get("Content-Type"), nil
}

// parsePayload normalizes a 2xx response body into JSON. Non-JSON
// bodies are wrapped as {"message": <text>} the way the backend's plain
// text responses are presented to callers.
func parsePayload(op Operation, body []byte, contentType string) (json.RawMessage, error) {
	if strings.Contains(contentType, "application/json") {
		if len(body) == 0 {
			return json.RawMessage(`{}`), nil
		}
		if !json.Valid(body) {
			return nil, &MalformedResponseError{Operation: op.Name, Reason: "invalid JSON body"}
		}
		return json.RawMessage(body), nil
	}

	wrapped, err := json.Marshal(map[string]string{"message": string(body)})
	if err != nil {
		return nil, &MalformedResponseError{Operation: op.Name, Reason: "unencodable text body"}
	}
	return json.RawMessage(wrapped), nil
}

// identityResponse is the expected shape of login/register responses
type identityResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// extractIdentity pulls the {user, token} pair out of an
// identity-establishing response. Some backend versions nest the user
// object, others inline its fields at the top level; both are accepted.
// A non-empty reason means the session must not be established.
func extractIdentity(payload json.RawMessage) (domain.User, string, string) {
	var nested identityResponse
	if err := json.Unmarshal(payload, &nested); err != nil {
		return domain.User{}, "", "body is not a JSON object"
	}

	if nested.Token == "" {
		return domain.User{}, "", "missing token"
	}

	if nested.User != nil && nested.User.ID != "" {
		return *nested.User, nested.Token, ""
	}

	var flat domain.User
	if err := json.Unmarshal(payload, &flat); err != nil || flat.ID == "" {
		return domain.User{}, "", "missing user object"
	}
	return flat, nested.Token, ""
}

// errorMessage extracts the backend's error message the way the
// original clients do: JSON {"message"} first, then plain text, then
// the status code.
func errorMessage(body []byte, contentType string, status int) string {
	if strings.Contains(contentType, "application/json") {
		var parsed struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &parsed); err == nil {
			if parsed.Message != "" {
				return parsed.Message
			}
			if parsed.Error != "" {
				return parsed.Error
			}
		}
	}

	text := strings.TrimSpace(string(body))
	if text != "" && len(text) <= 512 {
		return text
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}
