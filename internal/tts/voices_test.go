package tts

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestResolveVoice(t *testing.T) {
	tests := []struct {
		name string
		want openai.SpeechVoice
	}{
		{"Zephyr", openai.VoiceNova},
		{"Puck", openai.VoiceFable},
		{"Charon", openai.VoiceOnyx},
		{"Kore", openai.VoiceShimmer},
		{"Fenrir", openai.VoiceEcho},
		{"Leda", openai.VoiceNova},
		{"Orus", openai.VoiceOnyx},
		{"Aoede", openai.VoiceShimmer},
		{"Callirrhoe", openai.VoiceAlloy},
	}
	assert.Len(t, openAIVoices, len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVoice(tt.name))
		})
	}
}

func TestResolveVoice_Fallback(t *testing.T) {
	for _, name := range []string{"", "Unknown", "zephyr", " Kore"} {
		assert.Equal(t, DefaultOpenAIVoice, ResolveVoice(name), "voice %q", name)
	}
}

func TestStyleHint(t *testing.T) {
	assert.Len(t, styleHints, 7)
	assert.Equal(t, "bright and energetic", StyleHint("Zephyr"))
	assert.Equal(t, "", StyleHint("Aoede"))
	assert.Equal(t, "", StyleHint("Callirrhoe"))
	assert.Equal(t, "", StyleHint("Nobody"))
	assert.Equal(t, "", StyleHint(""))

	// a voice-table hit does not imply a hint
	assert.NotEqual(t, DefaultOpenAIVoice, ResolveVoice("Aoede"))
	assert.Empty(t, StyleHint("Aoede"))
}

func TestStyleHint_Idempotent(t *testing.T) {
	for name := range openAIVoices {
		first := StyleHint(name)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, StyleHint(name))
		}
	}
}

func TestMergeStyle(t *testing.T) {
	tests := []struct {
		style, hint, want string
	}{
		{"x", "y", "x; y"},
		{"x", "", "x"},
		{"", "y", "y"},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MergeStyle(tt.style, tt.hint), "style=%q hint=%q", tt.style, tt.hint)
	}
}

func TestStyledInput(t *testing.T) {
	assert.Equal(t, "Hi there\n\n[Read this with tone: calm]", StyledInput("Hi there", "calm"))
	assert.Equal(t, "Hi there", StyledInput("Hi there", ""))
}

func TestVoices(t *testing.T) {
	entries := Voices()
	assert.Len(t, entries, 9)
	assert.Equal(t, "Aoede", entries[0].Name)
	assert.Equal(t, "Zephyr", entries[len(entries)-1].Name)

	withHint := 0
	for _, e := range entries {
		assert.Equal(t, ResolveVoice(e.Name), e.Voice)
		if e.Hint != "" {
			withHint++
		}
	}
	assert.Equal(t, 7, withHint)
}
