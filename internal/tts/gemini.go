package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GeminiConfig holds configuration for the Gemini speech backend.
type GeminiConfig struct {
	BaseURL    string        // default: "https://generativelanguage.googleapis.com/v1beta"
	Model      string        // default: "gemini-2.5-flash-preview-tts"
	HTTPClient *http.Client  // optional
	Timeout    time.Duration // used when HTTPClient is nil, default 120s
}

// GeminiProvider synthesizes speech through the Generative Language API.
// The voice name is passed through verbatim and the style is embedded in
// the prompt.
type GeminiProvider struct {
	cfg        GeminiConfig
	httpClient *http.Client
}

// NewGeminiProvider creates a GeminiProvider with defaults applied.
func NewGeminiProvider(cfg GeminiConfig) *GeminiProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash-preview-tts"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &GeminiProvider{cfg: cfg, httpClient: client}
}

func (g *GeminiProvider) Name() string { return ProviderGemini }

func (g *GeminiProvider) Validate(req Request) error {
	if req.Text == "" || req.VoiceName == "" {
		return clientError("Missing text or voiceName")
	}
	return nil
}

// GeminiPayload is the generateContent request body.
type GeminiPayload struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string           `json:"responseModalities"`
	SpeechConfig       geminiSpeechConfig `json:"speechConfig"`
}

type geminiSpeechConfig struct {
	VoiceConfig geminiVoiceConfig `json:"voiceConfig"`
}

type geminiVoiceConfig struct {
	PrebuiltVoiceConfig geminiPrebuiltVoice `json:"prebuiltVoiceConfig"`
}

type geminiPrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData,omitempty"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiPrompt builds the instruction sent as the single content part.
// Quote characters in the text are not escaped, so a text containing '"'
// closes the quoted section early.
func GeminiPrompt(req Request) string {
	prompt := "Say the following text: \"" + req.Text + "\".\n\n" +
		"Style instructions: Use a " + req.VoiceName + " voice. "
	if req.Style != "" {
		prompt += "Tone: " + req.Style
	}
	return prompt
}

// BuildGeminiPayload resolves req into the generateContent body.
func BuildGeminiPayload(req Request) GeminiPayload {
	return GeminiPayload{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: GeminiPrompt(req)}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: geminiSpeechConfig{
				VoiceConfig: geminiVoiceConfig{
					PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: req.VoiceName},
				},
			},
		},
	}
}

func (g *GeminiProvider) Payload(req Request) any { return BuildGeminiPayload(req) }

// Synthesize posts the payload and returns the inline audio data as sent by
// the API (base64).
func (g *GeminiProvider) Synthesize(ctx context.Context, apiKey string, req Request) (string, error) {
	data, err := json.Marshal(BuildGeminiPayload(req))
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?%s",
		g.cfg.BaseURL, g.cfg.Model, url.Values{"key": {apiKey}}.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Unknown Google API error"
		var errResp geminiErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return "", upstreamError(resp.StatusCode, msg)
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data, nil
			}
		}
	}
	return "", contractError("No audio data returned from Google")
}
