package tts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// KeyFunc returns the credential for a provider. It is called on every
// invocation so credential changes take effect without a restart.
type KeyFunc func(provider string) (string, error)

// AudioCache stores base64 audio by key. Get reports a miss with ok=false.
type AudioCache interface {
	GetAudio(ctx context.Context, key string) (audio string, ok bool, err error)
	SetAudio(ctx context.Context, key, audio string, ttl time.Duration) error
	DeleteAudio(ctx context.Context, key string) error
}

// Service routes a request to one named provider and applies the shared
// validate / credential / call flow. It holds no per-request state.
type Service struct {
	providers map[string]Provider
	keys      KeyFunc
	cache     AudioCache
	cacheTTL  time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables the audio cache for successful results. A zero ttl
// disables it.
func WithCache(c AudioCache, ttl time.Duration) Option {
	return func(s *Service) {
		if c != nil && ttl > 0 {
			s.cache = c
			s.cacheTTL = ttl
		}
	}
}

// NewService creates a Service over the given providers.
func NewService(keys KeyFunc, providers []Provider, opts ...Option) *Service {
	s := &Service{
		providers: make(map[string]Provider, len(providers)),
		keys:      keys,
	}
	for _, p := range providers {
		s.providers[p.Name()] = p
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provider returns the provider registered under name.
func (s *Service) Provider(name string) (Provider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, clientError(fmt.Sprintf("Unknown provider %q", name))
	}
	return p, nil
}

// APIKey returns the current credential for a provider.
func (s *Service) APIKey(provider string) (string, error) {
	return s.keys(provider)
}

// CacheEnabled reports whether successful results are cached.
func (s *Service) CacheEnabled() bool { return s.cache != nil }

// Forget drops the cached audio for req, so the next Generate calls the
// provider again. It returns the cache key that was removed.
func (s *Service) Forget(ctx context.Context, providerName string, req Request) (string, error) {
	if s.cache == nil {
		return "", errors.New("audio cache is not enabled")
	}
	p, err := s.Provider(providerName)
	if err != nil {
		return "", err
	}
	if err := p.Validate(req); err != nil {
		return "", err
	}
	key, err := payloadKey(p, req)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	if err := s.cache.DeleteAudio(ctx, key); err != nil {
		return "", err
	}
	slog.Info("cached audio removed", "provider", providerName, "key", key)
	return key, nil
}

// Providers lists registered provider names.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate synthesizes req with the named provider. Validation and the
// credential check happen before any network call; the provider is called
// at most once.
func (s *Service) Generate(ctx context.Context, providerName string, req Request) (*Result, error) {
	return s.generate(ctx, uuid.NewString(), providerName, req)
}

// GenerateWithID is Generate with a caller-supplied invocation ID.
func (s *Service) GenerateWithID(ctx context.Context, id, providerName string, req Request) (*Result, error) {
	return s.generate(ctx, id, providerName, req)
}

func (s *Service) generate(ctx context.Context, id, providerName string, req Request) (*Result, error) {
	log := slog.With("synthesis_id", id, "provider", providerName)

	p, err := s.Provider(providerName)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(req); err != nil {
		return nil, err
	}

	apiKey, err := s.keys(p.Name())
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if apiKey == "" {
		log.Error("no API key configured")
		return nil, configError("Server misconfigured: no API key")
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey, err = payloadKey(p, req)
		if err != nil {
			log.Warn("cache key failed", "error", err)
		} else if audio, ok, err := s.cache.GetAudio(ctx, cacheKey); err != nil {
			log.Warn("cache lookup failed", "error", err)
		} else if ok {
			log.Debug("cache hit")
			return &Result{AudioBase64: audio}, nil
		}
	}

	start := time.Now()
	audio, err := p.Synthesize(ctx, apiKey, req)
	if err != nil {
		log.Warn("synthesis failed", "kind", KindOf(err).String(), "error", err, "latency_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	log.Info("synthesis complete", "audio_b64_len", len(audio), "latency_ms", time.Since(start).Milliseconds())

	if s.cache != nil && cacheKey != "" {
		if err := s.cache.SetAudio(ctx, cacheKey, audio, s.cacheTTL); err != nil {
			log.Warn("cache store failed", "error", err)
		}
	}

	return &Result{AudioBase64: audio}, nil
}

func payloadKey(p Provider, req Request) (string, error) {
	data, err := json.Marshal(p.Payload(req))
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append([]byte(p.Name()+":"), data...))
	return "tts:audio:" + hex.EncodeToString(sum[:]), nil
}
