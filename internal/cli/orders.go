package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lautaroCastilloJ/storefront/internal/api"
	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

func newOrdersCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and manage orders",
	}
	cmd.AddCommand(newOrdersListCommand(configPath))
	cmd.AddCommand(newOrdersGetCommand(configPath))
	cmd.AddCommand(newOrdersSetStatusCommand(configPath))
	return cmd
}

func newOrdersListCommand(configPath *string) *cobra.Command {
	var params api.ListOrdersParams
	var admin bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders (own orders, or all with --admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			var page api.OrderPage
			if admin {
				page, err = a.api.ListOrdersAdmin(cmd.Context(), params)
			} else {
				page, err = a.api.ListMyOrders(cmd.Context(), params)
			}
			if err != nil {
				return err
			}

			for _, o := range page.Items {
				fmt.Printf("%s  %-10s  $%.2f  %s\n",
					o.ID, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02 15:04"))
			}
			fmt.Printf("page %d/%d (%d orders)\n", page.PageNumber, page.TotalPages, page.TotalCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Status, "status", "", "filter by status")
	cmd.Flags().StringVar(&params.CustomerID, "customer", "", "filter by customer id (admin only)")
	cmd.Flags().IntVar(&params.PageNumber, "page", 1, "page number")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 10, "page size")
	cmd.Flags().BoolVar(&admin, "admin", false, "list all orders (administrators only)")
	return cmd
}

func newOrdersGetCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			o, err := a.api.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("order %s\nstatus: %s\ntotal: $%.2f\nshipping: %s\nbilling: %s\n",
				o.ID, o.Status, o.TotalAmount, o.ShippingAddress, o.BillingAddress)
			for _, it := range o.Items {
				fmt.Printf("  %s  %d x $%.2f\n", it.ProductID, it.Quantity, it.UnitPrice)
			}
			return nil
		},
	}
}

func newOrdersSetStatusCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Move an order through its lifecycle (administrators only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.OrderStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown order status %q", args[1])
			}

			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			o, err := a.api.UpdateOrderStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Printf("order %s is now %s\n", o.ID, o.Status)
			return nil
		},
	}
}
