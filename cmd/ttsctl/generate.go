package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikhilbhutani/voicegateway/internal/tts"
)

type requestFlags struct {
	provider string
	voice    string
	style    string
}

func (f *requestFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.provider, "provider", "p", "", "Provider: gemini or openai (default from TTS_DEFAULT_PROVIDER)")
	cmd.Flags().StringVarP(&f.voice, "voice", "v", "", "UI voice name, e.g. Kore")
	cmd.Flags().StringVarP(&f.style, "style", "s", "", "Optional tone instructions")
}

// request builds a tts.Request from the flags and the positional text.
// A single "-" argument reads the text from stdin.
func (f *requestFlags) request(cmd *cobra.Command, args []string) (tts.Request, error) {
	text := strings.Join(args, " ")
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return tts.Request{}, fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}
	return tts.Request{Text: text, VoiceName: f.voice, Style: f.style}, nil
}

func newGenerateCommand() *cobra.Command {
	var (
		flags requestFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:     "generate [text | -]",
		Aliases: []string{"gen"},
		Short:   "Synthesize text and write the audio",
		Example: `ttsctl generate -p openai -v Kore -s "calm" -o hello.wav "Hello there"`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, closeFn, err := loadService()
			if err != nil {
				return err
			}
			defer closeFn()
			req, err := flags.request(cmd, args)
			if err != nil {
				return err
			}
			provider := flags.provider
			if provider == "" {
				provider = cfg.TTS.DefaultProvider
			}

			result, err := svc.Generate(cmd.Context(), provider, req)
			if err != nil {
				return fmt.Errorf("%s (status %d)", tts.MessageOf(err), tts.StatusOf(err))
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.AudioBase64)
				return nil
			}

			audio, err := base64.StdEncoding.DecodeString(result.AudioBase64)
			if err != nil {
				return fmt.Errorf("decode audio: %w", err)
			}
			if err := os.WriteFile(out, audio, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(audio), out)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write decoded audio to this file instead of printing base64")
	return cmd
}
