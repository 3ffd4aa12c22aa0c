package chatmd

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPReplayRequest configures HTTPReplay.
type HTTPReplayRequest struct {
	URL    string
	Client *http.Client
	ReplayRequest
}

// HTTPReplay fetches a transcript over HTTP(S) and replays it.
func HTTPReplay(ctx context.Context, req HTTPReplayRequest) (ReplayResult, error) {
	if req.URL == "" {
		return ReplayResult{}, fmt.Errorf("replay http: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return ReplayResult{}, fmt.Errorf("replay http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ReplayResult{}, fmt.Errorf("replay http: status %s", resp.Status)
	}
	replay := req.ReplayRequest
	replay.Reader = resp.Body
	return Replay(ctx, replay)
}
