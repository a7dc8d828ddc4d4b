package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func favoritesCmd() *cobra.Command {
	favoritesRoot := &cobra.Command{
		Use:   "favorites",
		Short: "Manage your watch list",
		Long: "Manage favorited products. Favorited products are included in every\n" +
			"scheduled refresh cycle even without an active alert.",
	}

	favoritesRoot.AddCommand(
		favoriteListCmd(),
		favoriteAddCmd(),
		favoriteRemoveCmd(),
	)

	return favoritesRoot
}

func favoriteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List your favorites",
		Example: `  pw favorites list --user u1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			user, err := requireUser()
			if err != nil {
				return err
			}
			c := newClient()
			favorites, err := c.ListFavorites(context.Background(), user)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(favorites)
			}
			if len(favorites) == 0 {
				fmt.Println("No favorites found.")
				return nil
			}
			return printFavoriteTable(favorites)
		},
	}
}

func favoriteAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <product-id>",
		Short:   "Add a product to your watch list",
		Example: `  pw favorites add abc123 --user u1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			user, err := requireUser()
			if err != nil {
				return err
			}
			c := newClient()
			created, err := c.CreateFavorite(context.Background(), user, args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Favorited product %s.\n", args[0])
			return nil
		},
	}
}

func favoriteRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Short:   "Remove a favorite",
		Example: `  pw favorites remove abc123 --user u1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			user, err := requireUser()
			if err != nil {
				return err
			}
			c := newClient()
			if err := c.DeleteFavorite(context.Background(), args[0], user); err != nil {
				return err
			}
			fmt.Printf("Favorite %s removed.\n", args[0])
			return nil
		},
	}
}
