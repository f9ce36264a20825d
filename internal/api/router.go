package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/nikhilbhutani/voicegateway/internal/api/handlers"
	"github.com/nikhilbhutani/voicegateway/internal/api/middleware"
	"github.com/nikhilbhutani/voicegateway/internal/config"
	"github.com/nikhilbhutani/voicegateway/internal/tts"
)

type Router struct {
	mux   *chi.Mux
	redis *redis.Client
	cfg   *config.Config
	svc   *tts.Service
}

// NewRouter builds the HTTP surface. rdb may be nil.
func NewRouter(rdb *redis.Client, cfg *config.Config, svc *tts.Service) *Router {
	return &Router{
		mux:   chi.NewRouter(),
		redis: rdb,
		cfg:   cfg,
		svc:   svc,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	checks := map[string]handlers.Check{
		"credentials:" + rt.cfg.TTS.DefaultProvider: handlers.CredentialCheck(rt.cfg.TTS.DefaultProvider, rt.svc.APIKey),
	}
	if rt.redis != nil {
		checks["redis"] = handlers.RedisCheck(rt.redis)
	}
	health := handlers.NewHealthHandler(checks)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Method checks happen in the handler so every verb gets the JSON 405.
	audioH := handlers.NewAudioHandler(rt.svc, rt.cfg.TTS.DefaultProvider)
	r.HandleFunc("/generate-audio", audioH.Generate)
	r.HandleFunc("/generate-audio/{provider}", audioH.Generate)
	r.Get("/voices", audioH.Voices)

	return r
}
