package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/nikhilbhutani/voicegateway/internal/cache"
	"github.com/nikhilbhutani/voicegateway/internal/config"
	"github.com/nikhilbhutani/voicegateway/internal/tts"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the ttsctl command tree.
func NewRootCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "ttsctl",
		Short:         "Generate speech through the voice gateway providers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	cmd.AddCommand(
		newGenerateCommand(),
		newForgetCommand(),
		newPromptCommand(),
		newVoicesCommand(),
	)
	return cmd
}

// loadService builds the service from the environment. The audio cache is
// attached when REDIS_ADDR is set; close releases the redis client.
func loadService() (svc *tts.Service, cfg *config.Config, closeFn func(), err error) {
	cfg, err = config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	closeFn = func() {}
	var opts []tts.Option
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closeFn = func() { rdb.Close() }
		opts = append(opts, tts.WithCache(cache.NewCache(rdb), cfg.TTS.CacheTTL))
	}

	return tts.NewServiceFromConfig(cfg.TTS, config.APIKeyFromEnv, opts...), cfg, closeFn, nil
}
