package tts

import (
	"sort"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIVoice is used for voice names missing from the voice table.
const DefaultOpenAIVoice = openai.VoiceAlloy

// openAIVoices maps UI voice names to OpenAI voice identifiers.
var openAIVoices = map[string]openai.SpeechVoice{
	"Zephyr":     openai.VoiceNova,
	"Puck":       openai.VoiceFable,
	"Charon":     openai.VoiceOnyx,
	"Kore":       openai.VoiceShimmer,
	"Fenrir":     openai.VoiceEcho,
	"Leda":       openai.VoiceNova,
	"Orus":       openai.VoiceOnyx,
	"Aoede":      openai.VoiceShimmer,
	"Callirrhoe": openai.VoiceAlloy,
}

// styleHints holds the default delivery tone per UI voice name. Keyed like
// openAIVoices but maintained separately: Aoede and Callirrhoe have a voice
// and no hint.
var styleHints = map[string]string{
	"Zephyr": "bright and energetic",
	"Puck":   "playful and animated",
	"Charon": "deep, smooth and steady",
	"Kore":   "calm and soothing",
	"Fenrir": "intense and dramatic",
	"Leda":   "authoritative and formal",
	"Orus":   "balanced and clear",
}

// ResolveVoice returns the OpenAI voice for a UI voice name, falling back to
// DefaultOpenAIVoice.
func ResolveVoice(voiceName string) openai.SpeechVoice {
	if v, ok := openAIVoices[voiceName]; ok {
		return v
	}
	return DefaultOpenAIVoice
}

// StyleHint returns the default tone for a UI voice name, or "".
func StyleHint(voiceName string) string {
	return styleHints[voiceName]
}

// MergeStyle combines a caller style with a voice hint. Both present gives
// "style; hint".
func MergeStyle(style, hint string) string {
	switch {
	case style != "" && hint != "":
		return style + "; " + hint
	case style != "":
		return style
	default:
		return hint
	}
}

// StyledInput appends the tone annotation to text when merged is non-empty.
func StyledInput(text, merged string) string {
	if merged == "" {
		return text
	}
	return text + "\n\n[Read this with tone: " + merged + "]"
}

// VoiceEntry describes one UI voice as seen by the OpenAI provider.
type VoiceEntry struct {
	Name  string             `json:"name"`
	Voice openai.SpeechVoice `json:"voice"`
	Hint  string             `json:"hint,omitempty"`
}

// Voices lists the voice table sorted by UI name.
func Voices() []VoiceEntry {
	entries := make([]VoiceEntry, 0, len(openAIVoices))
	for name, v := range openAIVoices {
		entries = append(entries, VoiceEntry{Name: name, Voice: v, Hint: styleHints[name]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
