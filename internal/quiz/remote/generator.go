package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

// Config holds connection details for the generative completion service.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxPromptChars int
}

// Generator asks an external generative text service for quiz questions and
// validates its structured output. Every failure mode surfaces as
// *quiz.RemoteGenerationError so the orchestrating service can fall back to
// local synthesis.
type Generator struct {
	httpClient  *http.Client
	config      Config
	logger      zerolog.Logger
	completeURL string
}

func NewGenerator(cfg Config, logger zerolog.Logger) *Generator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = 1500
	}
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Generator{
		httpClient:  &http.Client{Timeout: timeout},
		config:      cfg,
		logger:      logger.With().Str("component", "remote_generator").Logger(),
		completeURL: base + "/v1/completions",
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Completion string `json:"completion"`
}

// Generate sends the structured prompt, extracts the JSON payload from the
// completion (tolerating markdown fencing), validates each question, and
// drops invalid entries. Zero valid questions is a failure.
func (g *Generator) Generate(ctx context.Context, req quiz.RemoteRequest) (quiz.RemoteResult, error) {
	if g.config.BaseURL == "" {
		return quiz.RemoteResult{}, &quiz.RemoteGenerationError{Reason: "generator endpoint not configured"}
	}

	prompt := buildPrompt(req, g.config.MaxPromptChars)
	completion, err := g.complete(ctx, prompt)
	if err != nil {
		return quiz.RemoteResult{}, err
	}

	payload, err := decodePayload(completion)
	if err != nil {
		return quiz.RemoteResult{}, &quiz.RemoteGenerationError{Reason: "unusable completion payload", Err: err}
	}

	result := validatePayload(payload, req.Counts, req.Kinds)
	if result.Total() == 0 {
		return quiz.RemoteResult{}, &quiz.RemoteGenerationError{Reason: "completion contained no valid questions"}
	}

	g.logger.Debug().
		Int("multiple_choice", len(result.MultipleChoice)).
		Int("true_false", len(result.TrueFalse)).
		Int("short_answer", len(result.ShortAnswer)).
		Msg("remote generation accepted")
	return result, nil
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{Prompt: prompt})
	if err != nil {
		return "", &quiz.RemoteGenerationError{Reason: "encode request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.completeURL, bytes.NewReader(body))
	if err != nil {
		return "", &quiz.RemoteGenerationError{Reason: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.config.APIKey)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", &quiz.RemoteGenerationError{Reason: "completion call failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", &quiz.RemoteGenerationError{Reason: fmt.Sprintf("completion returned status %d", resp.StatusCode)}
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &quiz.RemoteGenerationError{Reason: "decode completion", Err: err}
	}
	if strings.TrimSpace(completion.Completion) == "" {
		return "", &quiz.RemoteGenerationError{Reason: "empty completion"}
	}
	return completion.Completion, nil
}
