package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"

	"gconsole/internal/console"
)

func newServer(t *testing.T) (*console.Console, http.Handler) {
	t.Helper()
	c := console.New(console.Options{
		Title:     "Grader",
		Stdout:    io.Discard,
		Stderr:    io.Discard,
		Clipboard: &console.MemoryClipboard{},
		Logger:    clog.New(io.Discard),
	})
	t.Cleanup(c.Stop)
	return c, (&Server{Console: c}).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndVersion(t *testing.T) {
	_, h := newServer(t)
	if rec := do(t, h, http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("health: %d %s", rec.Code, rec.Body)
	}
	if rec := do(t, h, http.MethodGet, "/api/version", ""); rec.Code != http.StatusOK {
		t.Fatalf("version: %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route: %d", rec.Code)
	}
}

func TestOutputAndCompare(t *testing.T) {
	c, h := newServer(t)
	c.Println("hello", false)
	c.Flush()

	if rec := do(t, h, http.MethodGet, "/api/output", ""); rec.Body.String() != "hello\n" {
		t.Fatalf("output = %q", rec.Body.String())
	}

	var res compareResp
	rec := do(t, h, http.MethodPost, "/api/compare", "hello\n")
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil || !res.Match {
		t.Fatalf("compare equal: %v %+v", err, res)
	}
	rec = do(t, h, http.MethodPost, "/api/compare", "goodbye\n")
	res = compareResp{}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil || res.Match || !strings.Contains(res.Diff, "-goodbye") {
		t.Fatalf("compare different: %v %+v", err, res)
	}
}

func TestScriptFeedsReader(t *testing.T) {
	c, h := newServer(t)
	rec := do(t, h, http.MethodPost, "/api/script", "one\r\ntwo\n")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"lines":2`) {
		t.Fatalf("script: %d %s", rec.Code, rec.Body)
	}

	var st status
	_ = json.Unmarshal(do(t, h, http.MethodGet, "/api/status", "").Body.Bytes(), &st)
	if st.ScriptQueue != 2 || st.Title != "Grader" {
		t.Fatalf("status = %+v", st)
	}

	for _, want := range []string{"one", "two"} {
		if got := c.ReadLine(); got != want {
			t.Fatalf("ReadLine = %q, want %q", got, want)
		}
	}
}

func TestInputAndEOF(t *testing.T) {
	c, h := newServer(t)
	if rec := do(t, h, http.MethodPost, "/api/input", `{"line":"typed"}`); rec.Code != http.StatusAccepted {
		t.Fatalf("input: %d %s", rec.Code, rec.Body)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if line, err := c.ReadLineContext(ctx); err != nil || line != "typed" {
		t.Fatalf("ReadLineContext = %q, %v", line, err)
	}

	if rec := do(t, h, http.MethodPost, "/api/input", "not json"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad input: %d", rec.Code)
	}

	do(t, h, http.MethodPost, "/api/eof", "")
	if _, err := c.ReadLineContext(ctx); err != io.EOF {
		t.Fatalf("after eof: %v", err)
	}
}
