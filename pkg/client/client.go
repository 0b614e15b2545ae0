// Package client talks to the items API and keeps a local copy of the items it has seen.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/api"
	"github.com/adfharrison1/go-items/pkg/domain"
	"github.com/adfharrison1/go-items/pkg/logging"
	"github.com/adfharrison1/go-items/pkg/view"
)

const itemsPath = "/api/items"

// Client caches the item list and the state of its last request.
// Failed calls leave the cache as it was and record the error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	engine     *view.Engine[domain.Item]

	mu      sync.RWMutex
	items   []domain.Item
	loading bool
	lastErr string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(cl *Client) {
		cl.logger = logging.OrNop(logger)
	}
}

// New creates a client for the API served at baseURL, e.g. http://localhost:5000
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
		engine:     view.NewEngine(view.ItemSchema()),
		items:      []domain.Item{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Items returns a copy of the cached items
func (c *Client) Items() []domain.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a Fetch is in flight
func (c *Client) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the message of the last failure, or "" if none has been recorded since the last Fetch
func (c *Client) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// View applies cfg to the cached items
func (c *Client) View(cfg domain.ViewConfig) (domain.ViewResult[domain.Item], error) {
	return c.engine.Apply(c.Items(), cfg)
}

// Fetch replaces the cache with the server's items
func (c *Client) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	var fetched []domain.Item
	if err := c.do(ctx, http.MethodGet, itemsPath, nil, &fetched); err != nil {
		return c.fail("fetch", err)
	}
	if fetched == nil {
		fetched = []domain.Item{}
	}

	c.mu.Lock()
	c.items = fetched
	c.mu.Unlock()

	c.logger.Debug("Fetched items", zap.Int("count", len(fetched)))
	return nil
}

// Add creates item on the server and appends the stored item to the cache
func (c *Client) Add(ctx context.Context, item domain.Item) (domain.Item, error) {
	var created domain.Item
	if err := c.do(ctx, http.MethodPost, itemsPath, item, &created); err != nil {
		return domain.Item{}, c.fail("add", err)
	}

	c.mu.Lock()
	c.items = append(c.items, created)
	c.mu.Unlock()
	return created, nil
}

// Update replaces the item with item.ID on the server and in the cache
func (c *Client) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	var updated domain.Item
	if err := c.do(ctx, http.MethodPut, itemPath(item.ID), item, &updated); err != nil {
		return domain.Item{}, c.fail("update", err)
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = updated
		}
	}
	c.mu.Unlock()
	return updated, nil
}

// Delete removes the item from the server and the cache
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, itemPath(id), nil, nil); err != nil {
		return c.fail("delete", err)
	}

	c.mu.Lock()
	kept := make([]domain.Item, 0, len(c.items))
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.mu.Unlock()
	return nil
}

func itemPath(id int64) string {
	return itemsPath + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) fail(op string, err error) error {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()

	c.logger.Warn("Items request failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s items: %w", op, err)
}

// do sends body as JSON and decodes a 2xx response into out; out may be nil
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// StatusError is a non-2xx API response
type StatusError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func decodeStatusError(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	var body api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		statusErr.Message = body.Message
		statusErr.Fields = body.Fields
	}
	return statusErr
}
