package chatmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPReplay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write([]byte(twoTurnTranscript))
	}))
	defer srv.Close()

	var out bytes.Buffer
	result, err := HTTPReplay(context.Background(), HTTPReplayRequest{
		URL:    srv.URL,
		Client: srv.Client(),
		ReplayRequest: ReplayRequest{
			Writer: &out,
			Theme:  BoringTheme(),
		},
	})
	if err != nil {
		t.Fatalf("http replay: %v", err)
	}
	if got, want := out.String(), "Hello world\n# Title\n"; got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
	if len(result.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(result.Turns))
	}
}

func TestHTTPReplayStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := HTTPReplay(context.Background(), HTTPReplayRequest{
		URL:           srv.URL,
		ReplayRequest: ReplayRequest{Writer: &bytes.Buffer{}},
	})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPReplayRejectsScheme(t *testing.T) {
	_, err := HTTPReplay(context.Background(), HTTPReplayRequest{
		URL:           "ftp://example.com/transcript.jsonl",
		ReplayRequest: ReplayRequest{Writer: &bytes.Buffer{}},
	})
	if err == nil || !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
	if _, err := HTTPReplay(context.Background(), HTTPReplayRequest{}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
}
