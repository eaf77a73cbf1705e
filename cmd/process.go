package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hireflow/internal/worker"
)

var processSkipEmails bool

// processCmd runs one scoring pass for a single candidate.
var processCmd = &cobra.Command{
	Use:   "process <candidate-id>",
	Short: "Run one scoring pass for a candidate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate id %q: %w", args[0], err)
		}

		opts := worker.ProcessOptions{SkipEmails: processSkipEmails}
		if err := appInstance.Processor.Process(cmd.Context(), id, opts); err != nil {
			if errors.Is(err, worker.ErrNotPending) {
				fmt.Printf("Candidate %s is not pending scoring; nothing to do.\n", id)
				return nil
			}
			return fmt.Errorf("processing candidate %s: %w", id, err)
		}

		fmt.Printf("Candidate %s processed.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(&processSkipEmails, "skip-emails", false, "Suppress notification emails for this pass")
}
