package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/pricewatch-io/pricewatch/internal/api/client"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}

	productsRoot.AddCommand(
		productListCmd(),
		productGetCmd(),
		productCreateCmd(),
	)

	return productsRoot
}

func productListCmd() *cobra.Command {
	var (
		filterName     string
		filterCategory string
		filterBrand    string
		listLimit      int
		listOffset     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Example: `  pw products list
  pw products list --category laptops --brand acme
  pw products list --name widget --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListProducts(context.Background(), apiclient.ProductFilter{
				Name:     filterName,
				Category: filterCategory,
				Brand:    filterBrand,
				Limit:    listLimit,
				Offset:   listOffset,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			if err := printProductTable(list.Products); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d products\n", len(list.Products), list.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&filterName, "name", "", "filter by name substring")
	cmd.Flags().StringVar(&filterCategory, "category", "", "filter by category")
	cmd.Flags().StringVar(&filterBrand, "brand", "", "filter by brand")
	cmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results")
	cmd.Flags().IntVar(&listOffset, "offset", 0, "pagination offset")

	return cmd
}

func productGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show product details",
		Example: `  pw products get abc123
  pw products get abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}
}

func productCreateCmd() *cobra.Command {
	var (
		productName     string
		productCategory string
		productBrand    string
		productModel    string
		productDesc     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product to the catalog",
		Example: `  pw products create --name "Acme Widget Pro" --brand acme --category widgets`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if productName == "" {
				return fmt.Errorf("--name is required")
			}
			c := newClient()
			created, err := c.CreateProduct(context.Background(), &domain.Product{
				Name:        productName,
				Category:    productCategory,
				Brand:       productBrand,
				Model:       productModel,
				Description: productDesc,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Product created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&productName, "name", "", "product name")
	cmd.Flags().StringVar(&productCategory, "category", "", "category slug")
	cmd.Flags().StringVar(&productBrand, "brand", "", "brand name")
	cmd.Flags().StringVar(&productModel, "model", "", "model identifier")
	cmd.Flags().StringVar(&productDesc, "description", "", "free-text description")

	return cmd
}
