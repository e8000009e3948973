package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [topic]",
	Short: "Start a practice session on a topic (default topic when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := ""
		if len(args) == 1 {
			topic = args[0]
		}
		if topic == "" {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			topic = cfg.DefaultTopic
		}
		return runApp(cmd, topic)
	},
}
