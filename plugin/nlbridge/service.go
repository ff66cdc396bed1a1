package nlbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/sync/singleflight"

	"github.com/zonemeet/zonemeet/internal/errors"
	"github.com/zonemeet/zonemeet/internal/observability"
	"github.com/zonemeet/zonemeet/server/service/convert"
	"github.com/zonemeet/zonemeet/server/timezone"
)

const instructionTemplate = `Parse the following natural language time expression and return JSON with two fields:
- "iso": local datetime in YYYY-MM-DDTHH:MM,
- "iana": IANA timezone if mentioned or empty string.
Return only JSON.
Text: %q`

// Config holds the assistant connection settings.
type Config struct {
	Enabled    bool
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:      "gpt-4o-mini",
		MaxRetries: 3,
		Timeout:    30 * time.Second,
	}
}

// completionClient is the slice of the OpenAI client the service needs.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service implements Bridge against an OpenAI-compatible endpoint.
type Service struct {
	client completionClient
	config *Config
	group  singleflight.Group
}

// NewService creates a bridge service. A nil or disabled config yields a
// service whose Parse always fails with BRIDGE_UNAVAILABLE.
func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	s := &Service{config: cfg}
	if cfg.Enabled && cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		s.client = openai.NewClientWithConfig(clientConfig)
	}
	return s
}

// Available reports whether the assistant capability is configured.
func (s *Service) Available() bool {
	return s.client != nil
}

// Parse sends the instruction template to the assistant and decodes the
// reply. Concurrent calls with identical text collapse into one round trip,
// so a duplicate trigger cannot overwrite a newer result with a stale one.
func (s *Service) Parse(ctx context.Context, text string) (Suggestion, error) {
	if !s.Available() {
		return Suggestion{}, errors.BridgeUnavailable("assistant capability not configured")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Suggestion{}, errors.BridgeParseFailure("empty input")
	}

	v, err, _ := s.group.Do(text, func() (interface{}, error) {
		reply, err := s.complete(ctx, fmt.Sprintf(instructionTemplate, text))
		if err != nil {
			return Suggestion{}, errors.Wrap(err, errors.ErrCodeBridgeParseFailure, "assistant request failed")
		}
		return decodeReply(reply)
	})
	if err != nil {
		return Suggestion{}, err
	}
	return v.(Suggestion), nil
}

// complete performs one chat completion with exponential backoff retry.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < s.config.MaxRetries; attempt++ {
		resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       s.config.Model,
			Temperature: 0,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("empty assistant response")
			}
			return resp.Choices[0].Message.Content, nil
		}

		lastErr = err
		if attempt < s.config.MaxRetries-1 {
			waitTime := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			attrs := []any{
				"attempt", attempt + 1,
				"wait_time", waitTime,
				"error", err,
			}
			if reqCtx, ok := observability.FromContext(ctx); ok {
				attrs = append(attrs, observability.LogFieldRequestID, reqCtx.RequestID)
			}
			slog.Debug("assistant request failed, retrying", attrs...)
			select {
			case <-time.After(waitTime):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", lastErr
}

// wireReply is the raw JSON shape expected inside the assistant reply.
type wireReply struct {
	ISO  string `json:"iso"`
	IANA string `json:"iana"`
}

// decodeReply locates the first '{' and last '}' in the reply and strictly
// decodes that substring. A missing object or missing iso field fails the
// whole operation; an unsupported iana is dropped, not an error.
func decodeReply(reply string) (Suggestion, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return Suggestion{}, errors.BridgeParseFailure("no JSON object in assistant reply")
	}

	var wire wireReply
	if err := json.Unmarshal([]byte(reply[start:end+1]), &wire); err != nil {
		return Suggestion{}, errors.Wrap(err, errors.ErrCodeBridgeParseFailure, "malformed JSON in assistant reply")
	}
	if wire.ISO == "" {
		return Suggestion{}, errors.BridgeParseFailure("assistant reply missing iso field")
	}

	iso := normalizeISO(wire.ISO)
	if _, ok := convert.ParseWallClock(iso); !ok {
		return Suggestion{}, errors.BridgeParseFailure("assistant iso field is not a wall-clock")
	}

	out := Suggestion{ISO: iso}
	if wire.IANA != "" && timezone.IsSupported(wire.IANA) {
		out.Zone = wire.IANA
	}
	return out, nil
}

// normalizeISO accepts a space separator and truncates to minute precision.
func normalizeISO(iso string) string {
	iso = strings.Replace(strings.TrimSpace(iso), " ", "T", 1)
	if len(iso) > 16 {
		iso = iso[:16]
	}
	return iso
}

// Ensure Service implements Bridge
var _ Bridge = (*Service)(nil)
