package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCartCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}
	cmd.AddCommand(newCartAddCommand(configPath))
	cmd.AddCommand(newCartListCommand(configPath))
	cmd.AddCommand(newCartSetCommand(configPath))
	cmd.AddCommand(newCartRemoveCommand(configPath))
	cmd.AddCommand(newCartClearCommand(configPath))
	return cmd
}

func newCartAddCommand(configPath *string) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart (quantities for the same product accumulate)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			// Snapshot the product's display fields at add time.
			p, err := a.api.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.cart.AddItem(cmd.Context(), p, quantity); err != nil {
				return err
			}
			fmt.Printf("added %dx %s, cart now holds %d item(s)\n",
				quantity, p.Name, a.cart.ItemCount())
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "quantity to add")
	return cmd
}

func newCartListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Show the cart contents and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			items := a.cart.Items()
			if len(items) == 0 {
				fmt.Println("cart is empty")
				return nil
			}
			for _, li := range items {
				fmt.Printf("%s  %-30s  %d x $%.2f = $%.2f\n",
					li.ProductID, li.Name, li.Quantity, li.UnitPrice, li.Subtotal())
			}
			fmt.Printf("total: $%.2f (%d items)\n", a.cart.TotalAmount(), a.cart.ItemCount())
			return nil
		},
	}
}

func newCartSetCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set a line's quantity (zero or less removes the line)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.cart.UpdateQuantity(cmd.Context(), args[0], quantity); err != nil {
				return err
			}
			fmt.Printf("cart now holds %d item(s)\n", a.cart.ItemCount())
			return nil
		},
	}
}

func newCartRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.cart.RemoveItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("cart now holds %d item(s)\n", a.cart.ItemCount())
			return nil
		},
	}
}

func newCartClearCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("cart cleared")
			return nil
		},
	}
}
