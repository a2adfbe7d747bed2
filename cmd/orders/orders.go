package orders

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soukonline/cli/internal/api"
	"github.com/soukonline/cli/internal/app"
	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/models"
	"github.com/soukonline/cli/internal/utils"
)

// New builds the orders command group
func New(resolve func() *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Order management commands",
		Long: `Order management commands for the souk CLI.

This command group includes listing orders, inspecting a single order,
changing order status, and deletion.`,
	}

	cmd.AddCommand(newListCmd(resolve))
	cmd.AddCommand(newGetCmd(resolve))
	cmd.AddCommand(newSetStatusCmd(resolve))
	cmd.AddCommand(newDeleteCmd(resolve))

	return cmd
}

func newListCmd(resolve func() *app.App) *cobra.Command {
	var (
		page, pageSize int
		filters, sorts []string
		status         string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long:  "List all orders, or a filtered page with --status/--filter/--sort/--page",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := resolve()

			if status != "" {
				filters = append(filters, "status:=:"+status)
			}

			q, err := api.BuildQuery(page, pageSize, filters, sorts)
			if err != nil {
				return err
			}

			if q == nil {
				items, err := a.Orders.All(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list orders: %w", err)
				}
				return format.Print(items)
			}

			items, meta, err := a.Orders.Search(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}
			format.PrintInfo("Showing %d of %d orders", meta.Count, meta.TotalCount)
			return format.Print(items)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")
	cmd.Flags().StringVar(&status, "status", "", "only orders with this status")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as column:op:value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort as column[:asc|desc] (repeatable)")

	return cmd
}

func newGetCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an order",
		Long:  "Fetch a single order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "order id"); err != nil {
				return err
			}

			ord, err := resolve().Orders.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}
			return format.Print(ord)
		},
	}
}

func newSetStatusCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change an order's status",
		Long:  "Set an order's status to pending, completed, or cancelled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := args[1]
			switch status {
			case models.OrderPending, models.OrderCompleted, models.OrderCancelled:
			default:
				return fmt.Errorf("invalid status %q", status)
			}

			a := resolve()

			ord, err := a.Orders.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}
			ord.Status = status

			_, err = a.Orders.Update(cmd.Context(), ord)
			return err
		},
	}
}

func newDeleteCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Long:  "Delete a single order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "order id"); err != nil {
				return err
			}
			_, err := resolve().Orders.Delete(cmd.Context(), args[0])
			return err
		},
	}
}
