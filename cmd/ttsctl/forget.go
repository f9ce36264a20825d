package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newForgetCommand() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:     "forget [text | -]",
		Short:   "Remove the cached audio for a request",
		Example: `REDIS_ADDR=localhost:6379 TTS_CACHE_TTL=1h ttsctl forget -p openai -v Kore "Hello there"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, closeFn, err := loadService()
			if err != nil {
				return err
			}
			defer closeFn()

			if !svc.CacheEnabled() {
				return fmt.Errorf("audio cache is not enabled (set REDIS_ADDR and TTS_CACHE_TTL)")
			}

			req, err := flags.request(cmd, args)
			if err != nil {
				return err
			}
			provider := flags.provider
			if provider == "" {
				provider = cfg.TTS.DefaultProvider
			}

			key, err := svc.Forget(cmd.Context(), provider, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}
