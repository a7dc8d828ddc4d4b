package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var searchLimit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog with a free-text query",
		Example: `  pw search "gaming laptop under 800"
  pw search "acme widget" --limit 5 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.Search(context.Background(), strings.Join(args, " "), searchLimit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			if result.Intent != nil {
				var parts []string
				if result.Intent.ProductType != "" {
					parts = append(parts, "type="+result.Intent.ProductType)
				}
				if result.Intent.Brand != "" {
					parts = append(parts, "brand="+result.Intent.Brand)
				}
				if max := result.Intent.PriceRange.Max; max != nil {
					parts = append(parts, "max="+max.StringFixed(2))
				}
				if len(parts) > 0 {
					fmt.Println("Interpreted:", strings.Join(parts, " "))
				}
			}
			if len(result.Products) == 0 {
				fmt.Println("No products matched.")
				return nil
			}
			return printProductTable(result.Products)
		},
	}
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results")

	return cmd
}
