package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// burst hits return 429
func TestSearchRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.SearchLimitPerMin = 3
	app := newApp(t, cfg)

	var entries []logEntry
	entries = captureLogs(t, func() {
		for i := 0; i < 4; i++ {
			resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/vehicles?q=toyota", nil))
			if err != nil {
				t.Fatal(err)
			}
			if i < 3 && resp.StatusCode == http.StatusTooManyRequests {
				t.Fatalf("hit rate limit too early at %d", i)
			}
			if i == 3 && resp.StatusCode != http.StatusTooManyRequests {
				t.Fatalf("expected 429 after limit, got %d", resp.StatusCode)
			}
		}
	})
	if _, ok := findLog(entries, "rate.search.hit"); !ok {
		t.Fatal("rate.search.hit not logged")
	}

	// the HTML catalog shares the search budget
	resp, err := app.Test(httptest.NewRequest("GET", "/autos", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on /autos, got %d", resp.StatusCode)
	}
	// other pages are only under the global limit
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/filters", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("filters should not be search limited, got %d", resp.StatusCode)
	}
}

// oversized POST rejected with 413
func TestBodySizeLimit(t *testing.T) {
	app := newApp(t, testConfig())

	oversize := bytes.Repeat([]byte("A"), (1<<20)+10)
	req := httptest.NewRequest("POST", "/api/v1/leads", bytes.NewReader(oversize))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	// Fiber returns an error instead of a response when body too large; treat that as pass
	if err != nil {
		if strings.Contains(err.Error(), "body size exceeds") || strings.Contains(err.Error(), "too large") {
			return
		}
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 413 for oversize, got %d body=%s", resp.StatusCode, string(body))
	}
}
