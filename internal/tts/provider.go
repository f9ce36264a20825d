package tts

import "context"

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Request holds the caller's synthesis input.
type Request struct {
	Text      string `json:"text"`
	VoiceName string `json:"voiceName,omitempty"`
	Style     string `json:"style,omitempty"`
}

// Result holds the synthesized audio as base64 text.
type Result struct {
	AudioBase64 string `json:"audioBase64"`
}

// Provider is one speech synthesis backend. Payload is pure and returns the
// provider-specific request body; Synthesize performs the single upstream
// call and returns base64 audio.
type Provider interface {
	Name() string
	Validate(req Request) error
	Payload(req Request) any
	Synthesize(ctx context.Context, apiKey string, req Request) (string, error)
}
