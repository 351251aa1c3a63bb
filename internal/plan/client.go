package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/deskpilot/deskpilot/internal/ax"
)

const (
	// DefaultURL is the planning service command endpoint.
	DefaultURL = "http://127.0.0.1:8765/command"

	// DefaultTimeout bounds a single planning round trip.
	DefaultTimeout = 45 * time.Second

	// MaxPayloadBytes is the request body ceiling. Oversized snapshots
	// are trimmed from the tail until the payload fits; if even a
	// single node will not fit, the snapshot is omitted entirely.
	MaxPayloadBytes = 200_000

	maxResponseBytes = 1 << 20
)

// Request is the JSON body posted to the planning service.
type Request struct {
	Instruction string    `json:"instruction"`
	Snapshot    []ax.Node `json:"snapshot,omitempty"`
}

// Result is the planning service's reply. Exactly one of Response or
// Tool is expected on success; ErrMsg carries a service-side failure.
type Result struct {
	Response string    `json:"response,omitempty"`
	Tool     *Decision `json:"tool,omitempty"`
	ErrMsg   string    `json:"error,omitempty"`
}

// Health is the planning service's /health report.
type Health struct {
	Status            string  `json:"status"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	RequestsProcessed int     `json:"requests_processed"`
	Model             string  `json:"ollama_model,omitempty"`
	Version           string  `json:"version,omitempty"`
}

// Client talks to the external planning service over HTTP.
type Client struct {
	commandURL string
	healthURL  string
	httpc      *http.Client
}

// NewClient builds a client for the given command endpoint. Empty url
// and non-positive timeout fall back to the defaults.
func NewClient(commandURL string, timeout time.Duration) *Client {
	if commandURL == "" {
		commandURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		commandURL: commandURL,
		healthURL:  healthURL(commandURL),
		httpc:      &http.Client{Timeout: timeout},
	}
}

func healthURL(commandURL string) string {
	u, err := url.Parse(commandURL)
	if err != nil {
		return ""
	}
	u.Path = "/health"
	u.RawQuery = ""
	return u.String()
}

// EncodePayload marshals the planning request, shrinking the snapshot
// to respect MaxPayloadBytes. Trimming drops the last tenth of the
// nodes per pass, so the earliest (shallowest) elements survive.
func EncodePayload(instruction string, snapshot []ax.Node) ([]byte, error) {
	req := Request{Instruction: instruction, Snapshot: snapshot}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode planning request: %w", err)
	}
	for len(body) > MaxPayloadBytes && req.Snapshot != nil {
		if len(req.Snapshot) <= 1 {
			req.Snapshot = nil
		} else {
			drop := len(req.Snapshot) / 10
			if drop < 1 {
				drop = 1
			}
			req.Snapshot = req.Snapshot[:len(req.Snapshot)-drop]
		}
		body, err = json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("encode planning request: %w", err)
		}
	}
	return body, nil
}

// Plan posts the instruction and snapshot and decodes the decision.
// A non-200 status or an error field in the body is returned as an
// error; a structurally invalid tool decision is rejected here so
// callers only ever see validated decisions.
func (c *Client) Plan(ctx context.Context, instruction string, snapshot []ax.Node) (*Result, error) {
	body, err := EncodePayload(instruction, snapshot)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.commandURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build planning request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("planning request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read planning response: %w", err)
	}

	var result Result
	decodeErr := json.Unmarshal(data, &result)
	if decodeErr == nil && result.ErrMsg != "" {
		return nil, fmt.Errorf("planner error: %s", result.ErrMsg)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode planning response: %w", decodeErr)
	}
	if result.Tool != nil {
		if err := result.Tool.Validate(); err != nil {
			return nil, fmt.Errorf("planner returned invalid decision: %w", err)
		}
	}
	return &result, nil
}

// CheckHealth probes the planning service's /health endpoint.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	if c.healthURL == "" {
		return nil, fmt.Errorf("no health endpoint for %q", c.commandURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner health returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read health response: %w", err)
	}
	var h Health
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &h, nil
}
