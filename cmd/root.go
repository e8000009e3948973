package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Multiple-choice quiz practice in the terminal",
	Long:  "quizdeck: a terminal flashcard app that drills multiple-choice question banks and re-runs the ones you got wrong.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		return runApp(cmd, topic)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./quizdeck.yaml or $XDG_CONFIG_HOME/quizdeck/quizdeck.yaml)")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file loaded before the environment (default: .env)")
	rootCmd.PersistentFlags().String("bank", "", "Path to the SQLite question bank (overrides bank_path and QUIZDECK_BANK)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides log.file)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Shuffle seed; 0 seeds from the clock (overrides shuffle.seed)")
	rootCmd.Flags().String("topic", "", "Open this topic right away instead of the topic picker")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration and applies command-line overrides, which
// take precedence over files and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.Options{ConfigFile: cfgFile, EnvFile: envFile})
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.Log.File = p
	}
	if cmd.Flags().Changed("seed") {
		cfg.Shuffle.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	return cfg, nil
}

// resolveBankPath returns the bank path using --bank / bank_path (highest
// priority), then QUIZDECK_BANK, then the default XDG path.
func resolveBankPath(cfg *config.Config) (string, error) {
	if cfg.BankPath != "" {
		return cfg.BankPath, store.EnsureDir(cfg.BankPath)
	}
	return store.DefaultDBPath()
}
