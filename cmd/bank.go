package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/store"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the SQLite question bank",
}

var bankImportCmd = &cobra.Command{
	Use:   "import <topic> <file>",
	Short: "Import a question file into the bank as a topic (replaces an existing topic)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]
		label, _ := cmd.Flags().GetString("label")
		if label == "" {
			label = name
		}

		bank, err := questions.FileSource{Path: path}.Load(cmd.Context())
		if err != nil {
			return err
		}

		st, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		topic := store.Topic{Name: name, Label: label, Source: abs, ImportedAt: time.Now()}
		if err := st.TopicRepo().Import(cmd.Context(), topic, bank); err != nil {
			return fmt.Errorf("import %s: %w", name, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions as %q (use source bank://%s)\n", bank.Len(), name, name)
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics stored in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		topics, err := st.TopicRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %-24s  %9s  %-19s  %s\n", "Topic", "Label", "Questions", "Imported", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, t := range topics {
			fmt.Fprintf(out, "%-16s  %-24s  %9d  %-19s  %s\n",
				t.Name, t.Label, t.Count, t.ImportedAt.Format(time.DateTime), t.Source)
		}
		fmt.Fprintf(out, "\n%d topics\n", len(topics))
		return nil
	},
}

var bankRemoveCmd = &cobra.Command{
	Use:   "remove <topic>",
	Short: "Remove a topic and its questions from the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.TopicRepo().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("remove %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", args[0])
		return nil
	},
}

// openBank opens the question bank selected by flags and config.
func openBank(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	path, err := resolveBankPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve bank path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank: %w", err)
	}
	return st, nil
}

func init() {
	bankImportCmd.Flags().String("label", "", "Display label for the topic (default: topic name)")

	bankCmd.AddCommand(bankImportCmd)
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankRemoveCmd)
}
