package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/questions"
)

var errInvalidBank = errors.New("invalid question bank")

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check question bank files against the bank schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		out := cmd.OutOrStdout()

		failed := 0
		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", path, err)
				failed++
				continue
			}
			bank, err := questions.Parse(raw)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", path, err)
				failed++
				continue
			}

			warnings := questions.Lint(bank)
			for _, w := range warnings {
				fmt.Fprintf(out, "%s: question %s: %s\n", path, w.ID, w.Message)
			}
			if strict && len(warnings) > 0 {
				failed++
				continue
			}
			fmt.Fprintf(out, "%s: ok (%d questions, %d warnings)\n", path, bank.Len(), len(warnings))
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d of %d files failed", errInvalidBank, failed, len(args))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Treat lint warnings as failures")
}
