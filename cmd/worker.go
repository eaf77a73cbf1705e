package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hireflow/internal/app"
)

// workerCmd represents the worker command
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the background scoring worker",
	Long:  `Starts the polling worker that drains the pending-candidate queue: resume extraction, AI scoring and notification emails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get application context: %w", err)
		}
		defer appInstance.Close()

		return runWorker(cmd.Context(), appInstance)
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

// runWorker runs the poller until SIGINT or SIGTERM.
func runWorker(parent context.Context, appInstance *app.App) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting scoring worker (interval %dms, batch %d)",
		appInstance.Config.Worker.PollIntervalMs, appInstance.Config.Worker.BatchSize)

	appInstance.Poller.Run(ctx)

	for key, totals := range appInstance.Usage.Totals() {
		log.Infof("AI usage %s: %d call(s), %d prompt tokens, %d completion tokens",
			key, totals.Calls, totals.InputTokens, totals.OutputTokens)
	}
	log.Info("Worker shut down.")
	return nil
}
