package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List configured topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %-24s  %s\n", "Key", "Label", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, key := range cfg.TopicKeys() {
			_, t := cfg.Topic(key)
			marker := ""
			if key == cfg.DefaultTopic {
				marker = " (default)"
			}
			fmt.Fprintf(out, "%-16s  %-24s  %s%s\n",
				key, config.Label(key, t), cfg.SourcePath(t), marker)
		}

		fmt.Fprintf(out, "\n%d topics\n", len(cfg.Topics))
		return nil
	},
}
