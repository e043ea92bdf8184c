package ceclient

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return New(url, 5*time.Second, log.New(io.Discard, "", 0), false)
}

func TestCallPostSendsJSONBody(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotContentType, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte(`{"Success":true,"Value":"42"}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	res := client.Call(context.Background(), "read-memory", http.MethodPost, map[string]any{
		"Address": "0x1000",
	})

	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/api/cheatengine/read-memory" {
		t.Errorf("path = %s", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if !strings.Contains(gotBody, `"Address":"0x1000"`) {
		t.Errorf("body = %s", gotBody)
	}
	if v, _ := res.Data["Value"].(string); v != "42" {
		t.Errorf("Value = %v, want 42", res.Data["Value"])
	}
}

func TestCallGetCarriesNoBody(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if data, _ := io.ReadAll(r.Body); len(data) != 0 {
			t.Errorf("unexpected body: %s", data)
		}
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("unexpected content type %q", ct)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	res := client.Call(context.Background(), "health", http.MethodGet, nil)
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
}

func TestCallTransportFailure(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstream.Close()

	client := newTestClient(upstream.URL)
	res := client.Call(context.Background(), "process-list", http.MethodGet, nil)

	if res.Success {
		t.Fatal("expected failure for closed upstream")
	}
	if !strings.HasPrefix(res.Error, "Request failed: ") {
		t.Errorf("error = %q, want Request failed prefix", res.Error)
	}
	if ok, _ := res.Data["success"].(bool); ok {
		t.Errorf("data success flag should be false: %v", res.Data)
	}
	if msg, _ := res.Data["error"].(string); msg != res.Error {
		t.Errorf("data error %q does not match %q", msg, res.Error)
	}
}

func TestCallHTTPStatusFailure(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	res := client.Call(context.Background(), "memscan", http.MethodPost, map[string]any{})

	if res.Success {
		t.Fatal("expected failure for 500")
	}
	if res.Error != "HTTP error: 500" {
		t.Errorf("error = %q, want HTTP error: 500", res.Error)
	}
}

func TestCallMalformedBody(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	res := client.Call(context.Background(), "process-status", http.MethodGet, nil)

	if res.Success {
		t.Fatal("expected failure for malformed body")
	}
	if !strings.HasPrefix(res.Error, "Invalid response: ") {
		t.Errorf("error = %q, want Invalid response prefix", res.Error)
	}
}

func TestCallUpstreamLogicalFailure(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Success":false,"Error":"no process open","Detail":7}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	res := client.Call(context.Background(), "thread-list", http.MethodGet, nil)

	if res.Success {
		t.Fatal("expected logical failure")
	}
	if res.Error != "no process open" {
		t.Errorf("error = %q", res.Error)
	}
	// Body still forwarded verbatim for the caller.
	if detail, _ := res.Data["Detail"].(float64); detail != 7 {
		t.Errorf("Detail = %v, want 7", res.Data["Detail"])
	}
}

func TestSuccessFlagAbsentCountsAsSuccess(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"endpoints":["health"]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	res := client.Call(context.Background(), "info", http.MethodGet, nil)
	if !res.Success {
		t.Fatalf("flagless 2xx body should count as success, got %q", res.Error)
	}
}

func TestZeroTimeoutFallsBackToDefault(t *testing.T) {
	t.Parallel()

	client := New("http://localhost:1", 0, log.New(io.Discard, "", 0), false)
	if client.httpc.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpc.Timeout, DefaultTimeout)
	}
}
