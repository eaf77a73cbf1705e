package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"hireflow/internal/clix"
)

// queueCmd lists the candidates currently waiting for a scoring pass.
var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List candidates pending scoring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		params, err := clix.ParseListParams(cmd.Flags(), 20)
		if err != nil {
			return err
		}

		candidates, err := appInstance.CandidateStore.ListPendingCandidates(cmd.Context(), params.Limit)
		if err != nil {
			return fmt.Errorf("error listing pending candidates: %w", err)
		}

		if len(candidates) == 0 {
			fmt.Println("No candidates pending scoring.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Name", "Email", "Status", "Waiting", "Flags"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		now := time.Now()
		for _, c := range candidates {
			waiting := now.Sub(c.CreatedAt).Round(time.Second).String()
			flags := strconv.Itoa(len(c.DisqualificationFlags))
			if len(c.DisqualificationFlags) > 0 {
				flags = color.YellowString(flags)
			}
			table.Append([]string{
				c.ID.String(),
				c.Name,
				c.Email,
				string(c.Status),
				waiting,
				flags,
			})
		}
		table.Render()
		fmt.Printf("%d pending candidate(s) shown (oldest first).\n", len(candidates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queueCmd)

	queueCmd.Flags().IntVarP(&queueLimit, "limit", "n", 20, "Maximum number of pending candidates to show")
}

var queueLimit int
