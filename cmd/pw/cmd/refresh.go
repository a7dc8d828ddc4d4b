package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	var refreshProducts []string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Trigger a refresh cycle",
		Long: "Runs one refresh cycle synchronously: fetch current quotes, detect\n" +
			"price changes, and fire matching alerts. Without --product the cycle\n" +
			"covers every tracked product.",
		Example: `  pw refresh
  pw refresh --product abc123 --product def456`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			result, err := c.TriggerRefresh(context.Background(), refreshProducts)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			fmt.Println(result.Status)
			if result.Summary != nil {
				return printRefreshSummary(result.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&refreshProducts, "product", nil, "product id (repeatable)")

	return cmd
}
