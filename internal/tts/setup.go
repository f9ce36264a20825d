package tts

import "github.com/nikhilbhutani/voicegateway/internal/config"

// NewServiceFromConfig registers both providers using cfg.
func NewServiceFromConfig(cfg config.TTSConfig, keys KeyFunc, opts ...Option) *Service {
	return NewService(keys, []Provider{
		NewGeminiProvider(GeminiConfig{
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			Timeout: cfg.HTTPTimeout,
		}),
		NewOpenAIProvider(OpenAIConfig{
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.HTTPTimeout,
		}),
	}, opts...)
}
