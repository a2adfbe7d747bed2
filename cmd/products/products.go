package products

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/app"
	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/utils"
)

// New builds the products command group
func New(resolve func() *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Product catalog commands",
		Long: `Product catalog commands for the souk CLI.

This command group includes listing, creation, updates, deletion,
bulk operations, and image upload.`,
	}

	cmd.AddCommand(newListCmd(resolve))
	cmd.AddCommand(newGetCmd(resolve))
	cmd.AddCommand(newCreateCmd(resolve))
	cmd.AddCommand(newUpdateCmd(resolve))
	cmd.AddCommand(newDeleteCmd(resolve))
	cmd.AddCommand(newBulkDeleteCmd(resolve))
	cmd.AddCommand(newUploadCmd(resolve))

	return cmd
}

func newListCmd(resolve func() *app.App) *cobra.Command {
	var (
		page, pageSize int
		filters, sorts []string
		refresh        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List the product catalog, or a filtered page with --filter/--sort/--page",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := resolve()

			q, err := api.BuildQuery(page, pageSize, filters, sorts)
			if err != nil {
				return err
			}

			if q == nil {
				var items []models.Product
				if refresh {
					items, err = a.Products.Refresh(cmd.Context())
				} else {
					items, err = a.Products.All(cmd.Context())
				}
				if err != nil {
					return fmt.Errorf("failed to list products: %w", err)
				}
				return format.Print(items)
			}

			items, meta, err := a.Products.Search(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}
			format.PrintInfo("Showing %d of %d products", meta.Count, meta.TotalCount)
			return format.Print(items)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as column:op:value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort as column[:asc|desc] (repeatable)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cached catalog")

	return cmd
}

func newGetCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product",
		Long:  "Fetch a single product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "product id"); err != nil {
				return err
			}

			prod, err := resolve().Products.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}
			return format.Print(prod)
		},
	}
}

// parseSpecs turns key=value pairs into the product specifications map
func parseSpecs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	specs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid specification %q, expected key=value", pair)
		}
		specs[key] = value
	}
	return specs, nil
}

func newCreateCmd(resolve func() *app.App) *cobra.Command {
	var (
		description string
		categories  []string
		images      []string
		specs       []string
		available   bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a product",
		Long:  "Create a new product with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specifications, err := parseSpecs(specs)
			if err != nil {
				return err
			}

			prod := models.Product{
				Name:           args[0],
				Description:    description,
				Categories:     categories,
				Images:         images,
				IsAvailable:    available,
				Specifications: specifications,
			}

			_, err = resolve().Products.Create(cmd.Context(), prod)
			return err
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category id (repeatable)")
	cmd.Flags().StringSliceVar(&images, "image", nil, "image URL (repeatable)")
	cmd.Flags().StringArrayVar(&specs, "spec", nil, "specification as key=value (repeatable)")
	cmd.Flags().BoolVar(&available, "available", true, "product availability")

	return cmd
}

func newUpdateCmd(resolve func() *app.App) *cobra.Command {
	var (
		name, description string
		categories        []string
		images            []string
		specs             []string
		available         bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Long:  "Update a product's fields; only flags you set are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := resolve()

			prod, err := a.Products.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			if cmd.Flags().Changed("name") {
				prod.Name = name
			}
			if cmd.Flags().Changed("description") {
				prod.Description = description
			}
			if cmd.Flags().Changed("category") {
				prod.Categories = categories
			}
			if cmd.Flags().Changed("image") {
				prod.Images = images
			}
			if cmd.Flags().Changed("available") {
				prod.IsAvailable = available
			}
			if cmd.Flags().Changed("spec") {
				specifications, err := parseSpecs(specs)
				if err != nil {
					return err
				}
				prod.Specifications = specifications
			}

			_, err = a.Products.Update(cmd.Context(), prod)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new product name")
	cmd.Flags().StringVar(&description, "description", "", "new product description")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category id (repeatable)")
	cmd.Flags().StringSliceVar(&images, "image", nil, "image URL (repeatable)")
	cmd.Flags().StringArrayVar(&specs, "spec", nil, "specification as key=value (repeatable)")
	cmd.Flags().BoolVar(&available, "available", true, "product availability")

	return cmd
}

func newDeleteCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Long:  "Delete a single product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "product id"); err != nil {
				return err
			}
			_, err := resolve().Products.Delete(cmd.Context(), args[0])
			return err
		},
	}
}

func newBulkDeleteCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-delete <id>...",
		Short: "Delete several products",
		Long: `Delete several products in one go.

Deletions run independently: a failure does not roll back the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolve().Products.BulkDelete(cmd.Context(), args)
		},
	}
}

func newUploadCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a product image",
		Long:  "Upload an image file to the product catalog's blob store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer file.Close()

			_, err = resolve().Products.UploadImage(cmd.Context(), filepath.Base(args[0]), file)
			return err
		},
	}
}
