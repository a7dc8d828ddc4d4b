package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
		Long: "Manage standing price alerts. An alert fires once when the best\n" +
			"price for its product drops to or below the target.",
	}

	alertsRoot.AddCommand(
		alertListCmd(),
		alertCreateCmd(),
		alertDeleteCmd(),
	)

	return alertsRoot
}

func alertListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List your alerts",
		Example: `  pw alerts list --user u1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			user, err := requireUser()
			if err != nil {
				return err
			}
			c := newClient()
			alerts, err := c.ListAlerts(context.Background(), user)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertTable(alerts)
		},
	}
}

func alertCreateCmd() *cobra.Command {
	var (
		alertProduct string
		alertTarget  string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a price alert",
		Example: `  pw alerts create --user u1 --product abc123 --target 49.99`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if alertProduct == "" || alertTarget == "" {
				return fmt.Errorf("--product and --target are required")
			}
			user, err := requireUser()
			if err != nil {
				return err
			}
			c := newClient()
			created, err := c.CreateAlert(context.Background(), user, alertProduct, alertTarget)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Alert created: %s (target %s)\n",
				created.ID, created.TargetPrice.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().StringVar(&alertProduct, "product", "", "product id")
	cmd.Flags().StringVar(&alertTarget, "target", "", "target price, e.g. 49.99")

	return cmd
}

func alertDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete an alert",
		Example: `  pw alerts delete abc123 --user u1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			user, err := requireUser()
			if err != nil {
				return err
			}
			c := newClient()
			if err := c.DeleteAlert(context.Background(), args[0], user); err != nil {
				return err
			}
			fmt.Printf("Alert %s deleted.\n", args[0])
			return nil
		},
	}
}
