package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

func storesCmd() *cobra.Command {
	storesRoot := &cobra.Command{
		Use:   "stores",
		Short: "Manage retailers",
	}

	storesRoot.AddCommand(
		storeListCmd(),
		storeCreateCmd(),
	)

	return storesRoot
}

func storeListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stores",
		Example: `  pw stores list
  pw stores list --active`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stores, err := c.ListStores(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stores)
			}
			if len(stores) == 0 {
				fmt.Println("No stores found.")
				return nil
			}
			return printStoreTable(stores)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only list active stores")

	return cmd
}

func storeCreateCmd() *cobra.Command {
	var (
		storeName string
		storeSlug string
		storeURL  string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Register a store",
		Example: `  pw stores create --name "Shop A" --slug shop-a --url https://shop-a.example.com`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if storeName == "" || storeSlug == "" {
				return fmt.Errorf("--name and --slug are required")
			}
			c := newClient()
			created, err := c.CreateStore(context.Background(), &domain.Store{
				Name:   storeName,
				Slug:   storeSlug,
				URL:    storeURL,
				Active: true,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Store created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&storeName, "name", "", "display name")
	cmd.Flags().StringVar(&storeSlug, "slug", "", "unique short identifier")
	cmd.Flags().StringVar(&storeURL, "url", "", "storefront URL")

	return cmd
}
