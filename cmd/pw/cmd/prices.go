package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func pricesCmd() *cobra.Command {
	pricesRoot := &cobra.Command{
		Use:   "prices",
		Short: "Compare prices and inspect history",
	}

	pricesRoot.AddCommand(
		priceCompareCmd(),
		priceHistoryCmd(),
	)

	return pricesRoot
}

func priceCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <product-id>",
		Short: "Compare current prices across stores",
		Example: `  pw prices compare abc123
  pw prices compare abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			cmp, err := c.ComparePrices(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmp)
			}
			if len(cmp.Quotes) == 0 {
				fmt.Println("No quotes yet.")
				return nil
			}
			if err := printQuoteTable(cmp.Quotes); err != nil {
				return err
			}
			if cmp.Best != nil {
				fmt.Printf("\nBest: %s at %s %s\n",
					cmp.Best.Price.StringFixed(2), cmp.Best.StoreID, cmp.Best.SourceURL)
			}
			return nil
		},
	}
}

func priceHistoryCmd() *cobra.Command {
	var (
		historyStore string
		historyLimit int
	)

	cmd := &cobra.Command{
		Use:     "history <product-id>",
		Short:   "Show quote history for a product at one store",
		Example: `  pw prices history abc123 --store def456 --limit 20`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if historyStore == "" {
				return fmt.Errorf("--store is required")
			}
			c := newClient()
			hist, err := c.GetQuoteHistory(context.Background(), args[0], historyStore, historyLimit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(hist)
			}
			if len(hist.Quotes) == 0 {
				fmt.Println("No history.")
				return nil
			}
			return printQuoteTable(hist.Quotes)
		},
	}
	cmd.Flags().StringVar(&historyStore, "store", "", "store id")
	cmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of observations")

	return cmd
}
