package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

func newCheckoutCommand(configPath *string) *cobra.Command {
	var shipping, billing, notes string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			items := a.cart.Items()
			if len(items) == 0 {
				return fmt.Errorf("cart is empty")
			}
			if billing == "" {
				billing = shipping
			}

			req := domain.OrderRequest{
				ShippingAddress: shipping,
				BillingAddress:  billing,
				Notes:           notes,
				OrderItems:      make([]domain.OrderItem, 0, len(items)),
			}
			for _, li := range items {
				req.OrderItems = append(req.OrderItems, domain.OrderItem{
					ProductID: li.ProductID,
					Quantity:  li.Quantity,
					UnitPrice: li.UnitPrice,
				})
			}

			order, err := a.api.CreateOrder(cmd.Context(), req)
			if err != nil {
				return err
			}

			// The order went through; the cart's job is done.
			if err := a.cart.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("order %s placed, total $%.2f, status %s\n",
				order.ID, order.TotalAmount, order.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&shipping, "shipping", "", "shipping address")
	cmd.Flags().StringVar(&billing, "billing", "", "billing address (defaults to shipping)")
	cmd.Flags().StringVar(&notes, "notes", "", "order notes")
	cmd.MarkFlagRequired("shipping")
	return cmd
}
