package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)

	assert.Equal(t, "ttsctl", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	uses := []string{}
	for _, sub := range cmd.Commands() {
		uses = append(uses, sub.Name())
	}
	assert.Contains(t, uses, "generate")
	assert.Contains(t, uses, "forget")
	assert.Contains(t, uses, "prompt")
	assert.Contains(t, uses, "voices")
}

func TestVoicesCommand(t *testing.T) {
	out, err := run(t, "", "voices")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Zephyr")
	assert.Contains(t, out, "bright and energetic")
	assert.Contains(t, out, "(other)")
}

func TestPromptCommand_Gemini(t *testing.T) {
	out, err := run(t, "", "prompt", "-p", "gemini", "-v", "Zephyr", "-s", "excited", "Hello")
	require.NoError(t, err)

	var body struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "Say the following text: \"Hello\".\n\nStyle instructions: Use a Zephyr voice. Tone: excited", body.Contents[0].Parts[0].Text)
}

func TestPromptCommand_OpenAIStdin(t *testing.T) {
	out, err := run(t, "Read me\n", "prompt", "-p", "openai", "-v", "Kore", "-")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "shimmer", body["voice"])
	assert.Equal(t, "Read me\n\n[Read this with tone: calm and soothing]", body["input"])
}

func TestPromptCommand_Invalid(t *testing.T) {
	_, err := run(t, "", "prompt", "-p", "gemini", "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing text or voiceName")
}

func TestGenerateCommand_WritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("RIFFDATA"))
	}))
	defer srv.Close()

	t.Setenv("TTS_OPENAI_BASE_URL", srv.URL)
	t.Setenv("OPENAI_API_KEY", "test-key")

	path := filepath.Join(t.TempDir(), "out.wav")
	_, err := run(t, "", "generate", "-p", "openai", "-o", path, "Hello")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFFDATA", string(data))
}

func TestGenerateCommand_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := run(t, "", "generate", "-p", "openai", "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Server misconfigured: no API key")
	assert.Contains(t, err.Error(), "status 500")
}

func TestForgetCommand_CacheDisabled(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	_, err := run(t, "", "forget", "-p", "openai", "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio cache is not enabled")
}

func TestForgetCommand_RedisUnreachable(t *testing.T) {
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	t.Setenv("TTS_CACHE_TTL", "1h")

	_, err := run(t, "", "forget", "-p", "openai", "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache delete tts:audio:")
}
