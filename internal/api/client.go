package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/utils"
)

// Path markers the backend multiplexes verbs with. Some resources route
// writes by path suffix rather than by HTTP method alone.
const (
	pathID           = "id"
	pathAdd          = "add"
	pathAddRecursive = "add_recursive"
	pathUpdate       = "update"
	pathUpload       = "upload"
)

// TokenProvider supplies the bearer token for authenticated calls and reacts
// to authentication failures. Implemented by the session store.
type TokenProvider interface {
	Token() string
	HandleUnauthorized()
}

// Client is the single point of outbound REST calls. Construct exactly one at
// startup and inject it wherever reads or writes happen; it holds no response
// cache and performs no retries — caching belongs to the query store.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	tokens     TokenProvider
}

// NewClient creates a new API client
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// entityURL builds an absolute URL from the entity path and extra segments
func (c *Client) entityURL(entity models.Entity, segments ...string) string {
	parts := append([]string{c.BaseURL, string(entity)}, segments...)
	return strings.Join(parts, "/")
}

// do executes one HTTP exchange and decodes the JSON body into out. A 401
// hands control to the token provider's unauthorized flow; the call itself is
// never retried.
func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string, authed bool, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if authed {
		// The token is read at call time, not cached on the client, so a
		// login or refresh between calls is always picked up.
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	format.PrintDebug("%s %s", method, rawURL)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.HandleUnauthorized()
		return utils.NewAPIError(resp.StatusCode, "unauthorized")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := http.StatusText(resp.StatusCode)
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil {
			if failure.Message != "" {
				message = failure.Message
			} else if failure.Error != "" {
				message = failure.Error
			}
		}
		return utils.NewAPIError(resp.StatusCode, message)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a read; list and by-id endpoints are public
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	rawURL := c.BaseURL + "/" + path
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, rawURL, nil, "", false, out)
}

// Post performs an authenticated write with a JSON body
func (c *Client) Post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.BaseURL+"/"+path, bytes.NewReader(body), "application/json", true, out)
}

// Put performs an authenticated replace with a JSON body
func (c *Client) Put(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPut, c.BaseURL+"/"+path, bytes.NewReader(body), "application/json", true, out)
}

// Delete performs an authenticated delete
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, c.BaseURL+"/"+path, nil, "", true, out)
}

// List fetches a collection, routing the query descriptor through the
// parameter codec
func List[T any](ctx context.Context, c *Client, entity models.Entity, q *Query) (Result[[]T], error) {
	var env envelope[[]T]
	if err := c.Get(ctx, string(entity), q.Encode(), &env); err != nil {
		return Result[[]T]{}, err
	}
	return Result[[]T]{Payload: env.Data, Meta: env.Meta}, nil
}

// GetByID fetches a single entity through the by-id path marker
func GetByID[T any](ctx context.Context, c *Client, entity models.Entity, id string) (Result[T], error) {
	var env envelope[T]
	if err := c.Get(ctx, string(entity)+"/"+pathID+"/"+url.PathEscape(id), nil, &env); err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Payload: env.Data, Meta: env.Meta}, nil
}

// Create posts a new entity to the add path marker
func Create[T any](ctx context.Context, c *Client, entity models.Entity, payload T) (*WriteResponse, error) {
	var res WriteResponse
	if err := c.Post(ctx, string(entity)+"/"+pathAdd, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateRecursive posts a nested payload to the add_recursive path marker,
// letting the backend create a whole subtree in one call
func CreateRecursive[T any](ctx context.Context, c *Client, entity models.Entity, payload T) (*WriteResponse, error) {
	var res WriteResponse
	if err := c.Post(ctx, string(entity)+"/"+pathAddRecursive, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update posts a changed entity to the update path marker
func Update[T any](ctx context.Context, c *Client, entity models.Entity, payload T) (*WriteResponse, error) {
	var res WriteResponse
	if err := c.Post(ctx, string(entity)+"/"+pathUpdate, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Upload sends a single file as a multipart form to the upload path marker
func (c *Client) Upload(ctx context.Context, entity models.Entity, field, filename string, content io.Reader) (*WriteResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload form: %w", err)
	}

	var res WriteResponse
	if err := c.do(ctx, http.MethodPost, c.entityURL(entity, pathUpload), &buf, w.FormDataContentType(), true, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
