package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"Takeoff/internal/logger"
)

const systemPrompt = `You estimate manual excavation work on building sites.
Reply with a single JSON object and nothing else:
{"min_days": int, "max_days": int, "min_workers": int, "max_workers": int, "notes": string}`

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type payload struct {
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Model       string    `json:"model,omitempty"`
}

type apiResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type Option func(*GPTEstimator)

func WithModel(model string) Option {
	return func(g *GPTEstimator) { g.model = model }
}

func WithHTTPTimeout(d time.Duration) Option {
	return func(g *GPTEstimator) { g.http.Timeout = d }
}

// WithHTTPClient replaces the HTTP client, keeping nothing of the default.
func WithHTTPClient(c *http.Client) Option {
	return func(g *GPTEstimator) { g.http = c }
}

// GPTEstimator asks an OpenAI-compatible chat-completions endpoint.
type GPTEstimator struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
	log      *logger.Logger
}

func NewGPTEstimator(endpoint, apiKey string, log *logger.Logger, opts ...Option) *GPTEstimator {
	g := &GPTEstimator{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *GPTEstimator) Estimate(ctx context.Context, volumeCft float64) (Manpower, error) {
	body := payload{
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Excavation volume: %.2f cubic feet.", volumeCft)},
		},
		Temperature: 0.2,
		MaxTokens:   300,
		Model:       g.model,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return Manpower{}, fmt.Errorf("advisor: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(data))
	if err != nil {
		return Manpower{}, fmt.Errorf("advisor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("api-key", g.apiKey)
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	g.log.Debug("advisor: POST %s volume=%.2f", g.endpoint, volumeCft)
	resp, err := g.http.Do(req)
	if err != nil {
		return Manpower{}, fmt.Errorf("advisor: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Manpower{}, fmt.Errorf("advisor: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Manpower{}, fmt.Errorf("advisor: API %s: %s", resp.Status, truncate(string(raw), 200))
	}

	var result apiResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return Manpower{}, fmt.Errorf("%w: %v", ErrBadReply, err)
	}
	if len(result.Choices) == 0 {
		return Manpower{}, fmt.Errorf("%w: no choices", ErrBadReply)
	}
	return ParseReply(result.Choices[0].Message.Content)
}

// ParseReply reads a Manpower object from model output, which may wrap it
// in a fenced code block.
func ParseReply(s string) (Manpower, error) {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	var m Manpower
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return Manpower{}, fmt.Errorf("%w: %v", ErrBadReply, err)
	}
	if err := m.validate(); err != nil {
		return Manpower{}, err
	}
	return m, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
