// Package api implements the outbound REST client for the HireMe backend.
// Every endpoint answers with the same JSON envelope
// {success, data?, message?, errors?}; the client decodes it once and turns
// failures into common.APIError values carrying the backend's message and
// per-field errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/sithum-sy/hireme-client/internal/common"
	"github.com/sithum-sy/hireme-client/internal/config"
)

const (
	defaultBaseURL = "http://localhost:8000"
	userAgent      = "hireme-client"
	apiPrefix      = "/api"
)

// Client talks to the HireMe REST backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithToken sets the Bearer token for authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClientFromConfig builds the client the composition root uses.
func NewClientFromConfig(cfg *config.Config) *Client {
	return NewClient(
		&http.Client{Timeout: cfg.APITimeout},
		WithBaseURL(cfg.APIBaseURL),
		WithToken(cfg.APIBearerToken),
	)
}

// NewClient creates a new backend API client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the bearer token after a session refresh.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Envelope is the uniform response body the backend wraps everything in.
type Envelope struct {
	Success bool               `json:"success"`
	Data    json.RawMessage    `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
	Errors  common.FieldErrors `json:"errors,omitempty"`
}

// Get issues a GET to an /api path and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// FilePart is one file attached to a multipart submission.
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// PostMultipart submits form fields plus file parts. When spoofMethod is
// non-empty a Laravel-style "_method" field is added so a multipart POST can
// carry PUT/PATCH semantics.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []FilePart, spoofMethod string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if spoofMethod != "" {
		if err := writer.WriteField("_method", spoofMethod); err != nil {
			return fmt.Errorf("failed to write _method field: %w", err)
		}
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return fmt.Errorf("failed to create file part %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("failed to copy file %s: %w", f.FileName, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasPrefix(path, apiPrefix+"/") && path != apiPrefix {
		path = apiPrefix + path
	}
	return c.baseURL + path
}

// do sends the request, decodes the envelope, and normalizes every failure
// mode into a *common.APIError. out may be nil when the caller only needs
// success/failure.
func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.ErrNetwork.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.ErrNetwork.WithDetails(err.Error())
	}

	var env Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return common.NewAPIError(resp.StatusCode, "BAD_RESPONSE", "The server returned an unreadable response.")
			}
			// Fall through with an empty envelope so the status code decides.
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return envelopeError(resp.StatusCode, &env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return common.NewAPIError(resp.StatusCode, "BAD_RESPONSE", "The server returned an unexpected payload.").WithDetails(err.Error())
		}
	}
	return nil
}

// envelopeError picks the sentinel matching the status code and attaches the
// backend's message and field errors.
func envelopeError(status int, env *Envelope) *common.APIError {
	base := common.ErrInternalServer
	switch status {
	case http.StatusBadRequest:
		base = common.ErrBadRequest
	case http.StatusUnauthorized:
		base = common.ErrUnauthorized
	case http.StatusForbidden:
		base = common.ErrForbidden
	case http.StatusNotFound:
		base = common.ErrNotFound
	case http.StatusConflict:
		base = common.ErrConflict
	case http.StatusUnprocessableEntity:
		base = common.ErrUnprocessableEntity
	case http.StatusServiceUnavailable:
		base = common.ErrServiceUnavailable
	default:
		if status >= 200 && status < 300 {
			// success=false with a 2xx status still fails the call
			base = common.ErrBadRequest
		}
	}

	apiErr := &common.APIError{
		StatusCode:  status,
		Code:        base.Code,
		Message:     base.Message,
		FieldErrors: env.Errors,
	}
	if env.Message != "" {
		apiErr.Message = env.Message
	}
	return apiErr
}
