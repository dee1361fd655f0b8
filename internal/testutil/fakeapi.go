// Package testutil serves canned provider payloads from in-process fiber apps.
package testutil

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// FiberTransport routes outbound requests into app without opening a socket.
type FiberTransport struct {
	App *fiber.App
}

func (t FiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.App.Test(req, -1)
}

// Client returns an http.Client whose every request is answered by app.
func Client(app *fiber.App) *http.Client {
	return &http.Client{Transport: FiberTransport{App: app}}
}

// ErrUnreachable is returned by FailingTransport.
var ErrUnreachable = errors.New("dial tcp: connection refused")

// FailingTransport fails every request as a transport error and counts them.
type FailingTransport struct {
	mu    sync.Mutex
	calls int
}

func (t *FailingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return nil, ErrUnreachable
}

func (t *FailingTransport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

// Hits counts requests per route path.
type Hits struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewHits() *Hits {
	return &Hits{counts: make(map[string]int)}
}

// Middleware records c.Path() for every request.
func (h *Hits) Middleware(c *fiber.Ctx) error {
	h.mu.Lock()
	h.counts[utils.CopyString(c.Path())]++
	h.mu.Unlock()
	return c.Next()
}

func (h *Hits) Count(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[path]
}

// NewApp returns a quiet fiber app with hit counting installed. Immutable
// keeps c.Path() valid after the handler returns, since Hits keeps it as a key.
func NewApp(hits *Hits) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	if hits != nil {
		app.Use(hits.Middleware)
	}
	return app
}

// JSON answers with status and a JSON body.
func JSON(status int, body any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(status).JSON(body)
	}
}

// Text answers with status and a plain text body.
func Text(status int, body string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(status).SendString(body)
	}
}

// Raw answers with status and body sent as application/json without encoding.
func Raw(status int, body string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(status).SendString(body)
	}
}

func str(v int) string { return fmt.Sprintf("%d", v) }
