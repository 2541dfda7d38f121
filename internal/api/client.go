// Package api is the access layer for the payroll backend REST API. Each
// operation issues exactly one authenticated HTTP request (list operations
// follow pagination links) and returns a normalized result; failures are
// surfaced to, never handled for, the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"payrollkit/internal/session"
)

// DefaultBaseURL matches the backend's compiled-in location.
const DefaultBaseURL = "http://127.0.0.1:8000/api/v1/"

const defaultPageSize = 100

type Options struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	PageSize   int
}

type Client struct {
	base     *url.URL
	http     *http.Client
	sessions session.Store
	log      *slog.Logger
	pageSize int

	Auth       *AuthService
	Employees  *EmployeesService
	Payroll    *PayrollService
	Leaves     *LeavesService
	Deductions *DeductionsService
	Benefits   *BenefitsService
	Compliance *ComplianceService
}

// New builds a client bound to an injected session store; the token is read
// from the store at call time, never cached on the client.
func New(baseURL string, sessions session.Store, opts Options) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	c := &Client{
		base:     base,
		http:     httpClient,
		sessions: sessions,
		log:      logger,
		pageSize: pageSize,
	}
	c.Auth = &AuthService{c: c}
	c.Employees = &EmployeesService{c: c}
	c.Payroll = &PayrollService{c: c}
	c.Leaves = &LeavesService{c: c}
	c.Deductions = &DeductionsService{c: c}
	c.Benefits = &BenefitsService{c: c}
	c.Compliance = &ComplianceService{c: c}
	return c, nil
}

func (c *Client) Sessions() session.Store { return c.sessions }

// resolve joins a backend-relative path (with Django's trailing slash) to
// the base URL and attaches the query.
func (c *Client) resolve(path string, query url.Values) string {
	u := c.base.JoinPath(path)
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// send issues one request. Protected requests read the token fresh from the
// session store and fail before any network I/O when it is absent; a 401
// response clears the session, the backend has rejected the credential.
func (c *Client) send(ctx context.Context, method, rawURL string, in any, protected bool) ([]byte, error) {
	var token string
	if protected {
		token = c.sessions.Token()
		if token == "" {
			return nil, ErrUnauthenticated
		}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, netError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, netError(err)
	}
	c.log.Debug("api request",
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"durationMs", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(resp.StatusCode, data)
		if apiErr.Kind == KindAuthRejected {
			_ = c.sessions.Clear()
		}
		return nil, apiErr
	}
	return data, nil
}

// doJSON issues a protected request against a backend-relative path and
// decodes the response body into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	data, err := c.send(ctx, method, c.resolve(path, query), in, true)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// doOpen is doJSON without the credential, for the login entry point only.
func (c *Client) doOpen(ctx context.Context, method, path string, in, out any) error {
	data, err := c.send(ctx, method, c.resolve(path, nil), in, false)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// binary fetches an opaque body (PDF download), bypassing JSON decoding.
func (c *Client) binary(ctx context.Context, path string) ([]byte, error) {
	return c.send(ctx, http.MethodGet, c.resolve(path, nil), nil, true)
}
