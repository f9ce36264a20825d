package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/nikhilbhutani/voicegateway/internal/config"
	"github.com/nikhilbhutani/voicegateway/internal/tts"
)

func newPromptCommand() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:     "prompt [text | -]",
		Short:   "Print the provider request body without calling the provider",
		Example: `ttsctl prompt -p gemini -v Zephyr -s excited "Hello"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			req, err := flags.request(cmd, args)
			if err != nil {
				return err
			}
			name := flags.provider
			if name == "" {
				name = cfg.TTS.DefaultProvider
			}

			svc := tts.NewServiceFromConfig(cfg.TTS, config.APIKeyFromEnv)
			p, err := svc.Provider(name)
			if err != nil {
				return err
			}
			if err := p.Validate(req); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(p.Payload(req))
		},
	}

	flags.bind(cmd)
	return cmd
}
