package categories

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/app"
	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/utils"
)

// New builds the categories command group
func New(resolve func() *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category management commands",
		Long: `Category management commands for the souk CLI.

This command group includes listing, creation, updates, deletion,
and bulk operations on product categories.`,
	}

	cmd.AddCommand(newListCmd(resolve))
	cmd.AddCommand(newGetCmd(resolve))
	cmd.AddCommand(newCreateCmd(resolve))
	cmd.AddCommand(newCreateTreeCmd(resolve))
	cmd.AddCommand(newUpdateCmd(resolve))
	cmd.AddCommand(newDeleteCmd(resolve))
	cmd.AddCommand(newBulkDeleteCmd(resolve))

	return cmd
}

func newListCmd(resolve func() *app.App) *cobra.Command {
	var (
		page, pageSize int
		filters, sorts []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  "List all categories, or a filtered page with --filter/--sort/--page",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := resolve()

			q, err := api.BuildQuery(page, pageSize, filters, sorts)
			if err != nil {
				return err
			}

			if q == nil {
				items, err := a.Categories.All(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list categories: %w", err)
				}
				return format.Print(items)
			}

			items, meta, err := a.Categories.Search(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			format.PrintInfo("Showing %d of %d categories", meta.Count, meta.TotalCount)
			return format.Print(items)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as column:op:value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort as column[:asc|desc] (repeatable)")

	return cmd
}

func newGetCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a category",
		Long:  "Fetch a single category by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "category id"); err != nil {
				return err
			}

			cat, err := resolve().Categories.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}
			return format.Print(cat)
		},
	}
}

func newCreateCmd(resolve func() *app.App) *cobra.Command {
	var (
		parent     string
		attributes []string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a category",
		Long:  "Create a new category with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := models.Category{
				Name:       args[0],
				Attributes: attributes,
			}
			if parent != "" {
				cat.ParentCategory = &parent
			}

			_, err := resolve().Categories.Create(cmd.Context(), cat)
			return err
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "parent category id")
	cmd.Flags().StringSliceVar(&attributes, "attribute", nil, "category attribute (repeatable)")

	return cmd
}

func newCreateTreeCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "create-tree <file>",
		Short: "Create a category subtree",
		Long:  "Create a whole category subtree from a YAML file in one call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read tree file: %w", err)
			}

			var tree models.CategoryTree
			if err := yaml.Unmarshal(raw, &tree); err != nil {
				return fmt.Errorf("failed to parse tree file: %w", err)
			}

			_, err = resolve().Categories.CreateTree(cmd.Context(), tree)
			return err
		},
	}
}

func newUpdateCmd(resolve func() *app.App) *cobra.Command {
	var (
		name, parent string
		attributes   []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Long:  "Update a category's name, parent, or attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := resolve()

			cat, err := a.Categories.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}

			if cmd.Flags().Changed("name") {
				cat.Name = name
			}
			if cmd.Flags().Changed("parent") {
				if parent == "" {
					cat.ParentCategory = nil
				} else {
					cat.ParentCategory = &parent
				}
			}
			if cmd.Flags().Changed("attribute") {
				cat.Attributes = attributes
			}

			_, err = a.Categories.Update(cmd.Context(), cat)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new category name")
	cmd.Flags().StringVar(&parent, "parent", "", "new parent category id (empty clears)")
	cmd.Flags().StringSliceVar(&attributes, "attribute", nil, "category attribute (repeatable)")

	return cmd
}

func newDeleteCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  "Delete a single category by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "category id"); err != nil {
				return err
			}
			_, err := resolve().Categories.Delete(cmd.Context(), args[0])
			return err
		},
	}
}

func newBulkDeleteCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-delete <id>...",
		Short: "Delete several categories",
		Long: `Delete several categories in one go.

Deletions run independently: a failure does not roll back the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolve().Categories.BulkDelete(cmd.Context(), args)
		},
	}
}
