// Package client talks to the notes REST API on behalf of the card controller.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	notesPath      = "/api/notes"
	defaultTimeout = 10 * time.Second
)

// ErrMissingID is returned when a create response carries no identifier.
var ErrMissingID = errors.New("create response has no id")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Code, strings.TrimSpace(e.Body))
}

type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	agents  *fiber.Client
}

type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
		agents:  &fiber.Client{UserAgent: "notecards"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type notePayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type noteResponse struct {
	ID string `json:"id"`
}

// Create posts a new note and returns the identifier the server assigned.
func (c *Client) Create(ctx context.Context, title, body string) (string, error) {
	target := c.baseURL + notesPath
	code, raw, err := c.send(ctx, c.agents.Post(target).JSON(notePayload{Title: title, Body: body}))
	if err != nil {
		return "", err
	}
	if err := checkStatus(fiber.MethodPost, target, code, raw); err != nil {
		return "", err
	}
	var resp noteResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decoding create response: %w", err)
	}
	if resp.ID == "" {
		return "", ErrMissingID
	}
	return resp.ID, nil
}

func (c *Client) Update(ctx context.Context, id, title, body string) error {
	target := c.noteURL(id)
	code, raw, err := c.send(ctx, c.agents.Put(target).JSON(notePayload{Title: title, Body: body}))
	if err != nil {
		return err
	}
	return checkStatus(fiber.MethodPut, target, code, raw)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	target := c.noteURL(id)
	code, raw, err := c.send(ctx, c.agents.Delete(target))
	if err != nil {
		return err
	}
	return checkStatus(fiber.MethodDelete, target, code, raw)
}

func (c *Client) noteURL(id string) string {
	return c.baseURL + notesPath + "/" + url.PathEscape(id)
}

// send runs the request, bounded by both the client timeout and ctx's deadline.
func (c *Client) send(ctx context.Context, a *fiber.Agent) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(a)
		return 0, nil, err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if c.token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	code, body, errs := a.Timeout(timeout).Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Join(errs...)
	}
	return code, body, nil
}

func checkStatus(method, target string, code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return &StatusError{Method: method, URL: target, Code: code, Body: string(body)}
}
