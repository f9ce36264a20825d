package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nikhilbhutani/voicegateway/internal/tts"
)

func newVoicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "List UI voice names with their OpenAI voice and default tone",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tOPENAI VOICE\tDEFAULT TONE")
			for _, v := range tts.Voices() {
				hint := v.Hint
				if hint == "" {
					hint = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, v.Voice, hint)
			}
			fmt.Fprintf(tw, "(other)\t%s\t-\n", tts.DefaultOpenAIVoice)
			tw.Flush()
		},
	}
}
