package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nikhilbhutani/voicegateway/internal/tts"
)

const maxRequestBody = 1 << 20

type AudioHandler struct {
	svc             *tts.Service
	defaultProvider string
}

func NewAudioHandler(svc *tts.Service, defaultProvider string) *AudioHandler {
	return &AudioHandler{svc: svc, defaultProvider: defaultProvider}
}

// Generate synthesizes {text, voiceName, style} and replies with
// {"audioBase64": ...}. The provider comes from the {provider} path
// parameter, then the provider query parameter, then the configured default.
func (h *AudioHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set("X-Synthesis-ID", id)

	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	providerName := chi.URLParam(r, "provider")
	if providerName == "" {
		providerName = r.URL.Query().Get("provider")
	}
	if providerName == "" {
		providerName = h.defaultProvider
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	var req tts.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	result, err := h.svc.GenerateWithID(r.Context(), id, providerName, req)
	if err != nil {
		status := tts.StatusOf(err)
		if status >= http.StatusInternalServerError {
			slog.Error("generate audio", "synthesis_id", id, "provider", providerName, "error", err)
		}
		WriteError(w, status, tts.MessageOf(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Voices lists the registered providers and the OpenAI voice table.
func (h *AudioHandler) Voices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"providers":       h.svc.Providers(),
		"defaultProvider": h.defaultProvider,
		"voices":          tts.Voices(),
	})
}
