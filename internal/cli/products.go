package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lautaroCastilloJ/storefront/internal/api"
)

func newProductsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse and manage the product catalog",
	}
	cmd.AddCommand(newProductsListCommand(configPath))
	cmd.AddCommand(newProductsGetCommand(configPath))
	cmd.AddCommand(newProductsCreateCommand(configPath))
	cmd.AddCommand(newProductsUpdateCommand(configPath))
	cmd.AddCommand(newProductsToggleCommand(configPath, "enable", true))
	cmd.AddCommand(newProductsToggleCommand(configPath, "disable", false))
	return cmd
}

func newProductsListCommand(configPath *string) *cobra.Command {
	var params api.ListProductsParams
	var admin bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			var page api.ProductPage
			if admin {
				page, err = a.api.ListProductsAdmin(cmd.Context(), params)
			} else {
				page, err = a.api.ListProducts(cmd.Context(), params)
			}
			if err != nil {
				return err
			}

			for _, p := range page.Items {
				fmt.Printf("%s  %-8s  %-30s  $%.2f  stock=%d  %s\n",
					p.ID, p.SKU, p.Name, p.CurrentUnitPrice, p.StockQuantity, p.Status)
			}
			fmt.Printf("page %d/%d (%d products)\n", page.PageNumber, page.TotalPages, page.TotalCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Search, "search", "", "filter by name or sku")
	cmd.Flags().StringVar(&params.Status, "status", "", "filter by status")
	cmd.Flags().IntVar(&params.PageNumber, "page", 1, "page number")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 20, "page size")
	cmd.Flags().BoolVar(&admin, "admin", false, "use the admin listing (includes inactive products)")
	return cmd
}

func newProductsGetCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.api.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\nsku: %s\ncode: %s\nprice: $%.2f\nstock: %d\nstatus: %s\n%s\n",
				p.Name, p.ID, p.SKU, p.InternalCode, p.CurrentUnitPrice,
				p.StockQuantity, p.Status, p.Description)
			return nil
		},
	}
}

func productFlags(cmd *cobra.Command, req *api.CreateProductRequest) {
	cmd.Flags().StringVar(&req.SKU, "sku", "", "stock keeping unit")
	cmd.Flags().StringVar(&req.InternalCode, "code", "", "internal code")
	cmd.Flags().StringVar(&req.Name, "name", "", "product name")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().Float64Var(&req.CurrentUnitPrice, "price", 0, "unit price")
	cmd.Flags().IntVar(&req.StockQuantity, "stock", 0, "stock quantity")
	cmd.Flags().StringVar(&req.ImageURL, "image-url", "", "image URL")
}

func newProductsCreateCommand(configPath *string) *cobra.Command {
	var req api.CreateProductRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product (administrators only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.api.CreateProduct(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	productFlags(cmd, &req)
	cmd.MarkFlagRequired("sku")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newProductsUpdateCommand(configPath *string) *cobra.Command {
	var req api.CreateProductRequest

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product (administrators only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.api.UpdateProduct(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Printf("updated %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	productFlags(cmd, &req)
	return cmd
}

func newProductsToggleCommand(configPath *string, use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id>",
		Short: use + " a product in the public catalog (administrators only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.api.SetProductEnabled(cmd.Context(), args[0], enabled); err != nil {
				return err
			}
			fmt.Printf("%sd %s\n", use, args[0])
			return nil
		},
	}
}
