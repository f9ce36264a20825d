package tts

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISpeechModel is the model sent with every speech request.
const OpenAISpeechModel openai.SpeechModel = "gpt-4o-mini-tts"

// OpenAIConfig holds configuration for the OpenAI speech backend.
type OpenAIConfig struct {
	BaseURL    string        // default: "https://api.openai.com/v1"
	HTTPClient *http.Client  // optional
	Timeout    time.Duration // used when HTTPClient is nil, default 120s
}

// OpenAIProvider synthesizes speech using OpenAI's speech endpoint. UI voice
// names are mapped through the voice table and the style is appended to the
// input as a tone annotation.
type OpenAIProvider struct {
	cfg        OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIProvider creates an OpenAIProvider with defaults applied.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &OpenAIProvider{cfg: cfg, httpClient: client}
}

func (o *OpenAIProvider) Name() string { return ProviderOpenAI }

// Validate requires text only; a missing voice name falls back to defaults.
func (o *OpenAIProvider) Validate(req Request) error {
	if req.Text == "" {
		return clientError("Missing text")
	}
	return nil
}

// BuildSpeechRequest resolves req into the speech request body.
func BuildSpeechRequest(req Request) openai.CreateSpeechRequest {
	merged := MergeStyle(req.Style, StyleHint(req.VoiceName))
	return openai.CreateSpeechRequest{
		Model:          OpenAISpeechModel,
		Voice:          ResolveVoice(req.VoiceName),
		Input:          StyledInput(req.Text, merged),
		ResponseFormat: openai.SpeechResponseFormatWav,
	}
}

func (o *OpenAIProvider) Payload(req Request) any { return BuildSpeechRequest(req) }

// Synthesize requests WAV audio and returns it base64-encoded.
func (o *OpenAIProvider) Synthesize(ctx context.Context, apiKey string, req Request) (string, error) {
	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = o.cfg.BaseURL
	clientCfg.HTTPClient = o.httpClient
	client := openai.NewClientWithConfig(clientCfg)

	resp, err := client.CreateSpeech(ctx, BuildSpeechRequest(req))
	if err != nil {
		return "", openAIError(err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return "", contractError("No audio data returned from OpenAI")
	}

	return base64.StdEncoding.EncodeToString(audio), nil
}

// openAIError maps SDK errors for non-2xx replies to upstream errors that
// keep the upstream status and message. Transport errors pass through.
func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "Unknown OpenAI API error"
		}
		return upstreamError(apiErr.HTTPStatusCode, msg)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		msg := string(reqErr.Body)
		if msg == "" {
			msg = "Unknown OpenAI API error"
		}
		return upstreamError(reqErr.HTTPStatusCode, msg)
	}

	return fmt.Errorf("openai speech: %w", err)
}
