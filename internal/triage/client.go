package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clinic-triage-service/internal/domain"
	"clinic-triage-service/internal/domain/entities"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	DefaultMaxTokens   = 1500
	DefaultTemperature = 0.3
	DefaultTimeout     = 60 * time.Second

	confidenceLabel = "High"
	fallbackMessage = "⚠️ Sorry, the AI triage service is temporarily unavailable. Please try again later.\nError: %s"
)

// Config holds the knobs of the outbound chat-completions call. NewClient defaults
// MaxTokens, Timeout and ModelLabel when they are zero. Temperature is sent as given:
// zero is a valid greedy setting, so callers wanting the usual value pass DefaultTemperature.
type Config struct {
	APIURL      string
	APIKey      string
	Model       string
	ModelLabel  string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client calls an OpenAI-compatible chat completions endpoint. Failures never escape
// Analyze; they come back as a Result carrying the error text.
type Client struct {
	cfg        Config
	HTTPClient *http.Client
	log        zerolog.Logger
	now        func() time.Time
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewClient builds a Client. Retries are disabled: a user re-running the analysis is the
// only retry path.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ModelLabel == "" {
		cfg.ModelLabel = cfg.Model
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		cfg:        cfg,
		HTTPClient: retryClient.StandardClient(),
		log:        log.With().Str("component", "triage-client").Logger(),
		now:        time.Now,
	}
}

// Analyze renders the prompt, calls the reasoning service and normalizes the outcome.
func (c *Client) Analyze(ctx context.Context, symptoms, duration, severity string, age int, medicalHistory string) entities.TriageResult {
	keywords := DetectEmergencyKeywords(symptoms)
	prompt := BuildPrompt(symptoms, duration, severity, age, medicalHistory)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		svcErr := &domain.ExternalServiceError{Op: "triage analysis", Err: err}
		c.log.Warn().Err(svcErr).Int("emergency_keywords", len(keywords)).Msg("Triage call failed, returning fallback result")
		return entities.TriageResult{
			AnalysisText:      fmt.Sprintf(fallbackMessage, err.Error()),
			Timestamp:         c.now(),
			EmergencyKeywords: keywords,
			Error:             svcErr.Error(),
		}
	}

	c.log.Debug().Int("chars", len(text)).Msg("Triage analysis received")
	return entities.TriageResult{
		AnalysisText:      text,
		Timestamp:         c.now(),
		ModelLabel:        c.cfg.ModelLabel,
		ConfidenceLabel:   confidenceLabel,
		EmergencyKeywords: keywords,
	}
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	req, err := c.prepareRequest(ctx, body)
	if err != nil {
		return "", err
	}

	resp := new(chatResponse)
	if err := c.sendRequest(req, resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("malformed response: no choices returned")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("malformed response: empty analysis content")
	}
	return text, nil
}

func (c *Client) prepareRequest(ctx context.Context, body any) (*http.Request, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	return req, nil
}

func (c *Client) sendRequest(req *http.Request, response *chatResponse) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr chatResponse
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
			return fmt.Errorf("service returned status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("service returned status %d", resp.StatusCode)
	}

	if len(bodyBytes) == 0 {
		return errors.New("malformed response: empty body")
	}
	if err := json.Unmarshal(bodyBytes, response); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}
