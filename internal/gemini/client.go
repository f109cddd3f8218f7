// Package gemini implements the client side of the generateContent
// exchange: one HTTP POST per prompt, reply text taken from the first
// candidate's first part, every failure classified.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"

	// PlaceholderToken is the value shipped in scaffolded config files.
	// A client whose token still equals it never touches the network.
	PlaceholderToken = "YOUR_API_KEY"
)

// Kind classifies a failed exchange.
type Kind string

const (
	// KindUnconfigured means the API key is unset or still the
	// placeholder. Fixed by configuration, not by resending.
	KindUnconfigured Kind = "unconfigured"
	// KindTransport covers connection, DNS, and timeout failures.
	KindTransport Kind = "transport"
	// KindNoData means a response arrived with an empty body.
	KindNoData Kind = "no_data"
	// KindParse means the body did not match the expected envelope:
	// malformed JSON, zero candidates, zero parts, or missing text.
	KindParse Kind = "parse"
)

// Error is a classified completion failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether resending the same prompt may succeed.
// Parse failures are excluded: the endpoint may be answering in a
// different shape entirely (quota errors, for one) and the raw body
// needs a look first.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindNoData
}

// Request is the generateContent request body.
type Request struct {
	Contents []Content `json:"contents"`
}

// Content is one entry in the contents array.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part carries the text of a content entry.
type Part struct {
	Text string `json:"text"`
}

// Response is the subset of the generateContent envelope this client
// consumes; all other fields are ignored.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one alternative generated reply. Only the first is used.
type Candidate struct {
	Content struct {
		Parts []Part `json:"parts"`
	} `json:"content"`
}

// Config carries the endpoint settings for a Client.
type Config struct {
	BaseURL string
	Model   string
	Token   string
	Timeout time.Duration // 0 keeps the transport default (no timeout)
}

// Client issues completion requests. It is stateless: each Send is an
// independent call, and overlapping Sends complete independently.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a client, filling in endpoint defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether a usable API key is set.
func (c *Client) Configured() bool {
	return c.cfg.Token != "" && c.cfg.Token != PlaceholderToken
}

// Send posts prompt to the endpoint and returns the first candidate's
// first part. The prompt is sent as-is: no trimming, no validation —
// an empty prompt is a valid if useless request. Every failure is a
// *Error with one of the Kind values.
func (c *Client) Send(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", &Error{Kind: KindUnconfigured, Message: "API key is not set (or still the placeholder)"}
	}

	body, err := json.Marshal(Request{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return "", &Error{Kind: KindTransport, Message: "encoding request", Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Kind: KindTransport, Message: "creating request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Kind: KindTransport, Message: "sending request", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindTransport, Message: "reading response", Err: err}
	}
	if len(raw) == 0 {
		return "", &Error{Kind: KindNoData, Message: "empty response body"}
	}

	// Status is deliberately not branched on: an error status arrives
	// with a body in a different shape and fails envelope checks below.
	var envelope Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", &Error{Kind: KindParse, Message: "decoding response: " + excerpt(raw), Err: err}
	}
	if len(envelope.Candidates) == 0 {
		return "", &Error{Kind: KindParse, Message: "no candidates in response: " + excerpt(raw)}
	}
	parts := envelope.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", &Error{Kind: KindParse, Message: "no text in first candidate: " + excerpt(raw)}
	}

	return parts[0].Text, nil
}

// ModelInfo describes one model advertised by the endpoint.
type ModelInfo struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	Description                string   `json:"description"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// ID returns the model identifier without the "models/" prefix.
func (m ModelInfo) ID() string {
	return strings.TrimPrefix(m.Name, "models/")
}

type modelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// ListModels fetches the models the endpoint advertises, keeping only
// those that support generateContent, sorted by ID.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if !c.Configured() {
		return nil, &Error{Kind: KindUnconfigured, Message: "API key is not set (or still the placeholder)"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/models", nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "creating request", Err: err}
	}
	req.Header.Set("X-goog-api-key", c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "sending request", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "reading response", Err: err}
	}
	if len(raw) == 0 {
		return nil, &Error{Kind: KindNoData, Message: "empty response body"}
	}

	var listing modelsResponse
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil, &Error{Kind: KindParse, Message: "decoding response: " + excerpt(raw), Err: err}
	}

	models := make([]ModelInfo, 0, len(listing.Models))
	for _, m := range listing.Models {
		if !supportsGeneration(m) {
			continue
		}
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].ID() < models[j].ID()
	})

	return models, nil
}

func supportsGeneration(m ModelInfo) bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

// excerpt trims a raw body for inclusion in error messages.
func excerpt(raw []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
