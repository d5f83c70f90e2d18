package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"dealership/internal/config"
	"dealership/internal/http/handlers"
	"dealership/internal/repos"
)

const templatesDir = "../../web/templates"

func testConfig() config.Config {
	return config.Config{
		DBDSN:             ":memory:",
		TemplatesDir:      templatesDir,
		RateLimitPerMin:   1000,
		SearchLimitPerMin: 1000,
	}
}

// newApp wires the real app over the embedded catalog and an in-memory db.
func newApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	vehicles, err := repos.LoadVehicles("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return handlers.NewApp(cfg, handlers.NewDeps(db, vehicles))
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken loads a page so the CSRF middleware issues its cookie.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/contacto", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func postForm(t *testing.T, app *fiber.App, path, body, csrf string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if csrf != "" {
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrf})
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, target string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func getJSON(t *testing.T, app *fiber.App, target string, out any, cookies ...*http.Cookie) int {
	t.Helper()
	resp, body := get(t, app, target, cookies...)
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("%s: decode %q: %v", target, body, err)
	}
	return resp.StatusCode
}

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

// captureLogs collects the JSON log lines written while fn runs.
func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e logEntry
		if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findLog(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
