package contacts

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/soukonline/cli/internal/app"
	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/utils"
)

// New builds the contacts command group
func New(resolve func() *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Contact message commands",
		Long: `Contact message commands for the souk CLI.

This command group includes listing contact threads, inspecting a
thread, deleting threads, and per-message operations.`,
	}

	cmd.AddCommand(newListCmd(resolve))
	cmd.AddCommand(newGetCmd(resolve))
	cmd.AddCommand(newDeleteCmd(resolve))
	cmd.AddCommand(newMessagesCmd(resolve))

	return cmd
}

func newListCmd(resolve func() *app.App) *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contact threads",
		Long:  "List all contact-us threads",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := resolve().Contacts.All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list contacts: %w", err)
			}

			if unreadOnly {
				unread := items[:0]
				for _, ct := range items {
					for _, msg := range ct.Messages {
						if !msg.IsRead {
							unread = append(unread, ct)
							break
						}
					}
				}
				items = unread
			}

			return format.Print(items)
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "only threads with unread messages")

	return cmd
}

func newGetCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a contact thread",
		Long:  "Fetch a single contact thread by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "contact id"); err != nil {
				return err
			}

			ct, err := resolve().Contacts.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get contact: %w", err)
			}
			return format.Print(ct)
		},
	}
}

func newDeleteCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact thread",
		Long:  "Delete a single contact thread by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateObjectID(args[0], "contact id"); err != nil {
				return err
			}
			_, err := resolve().Contacts.Delete(cmd.Context(), args[0])
			return err
		},
	}
}

func newMessagesCmd(resolve func() *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Per-message operations",
		Long:  "Commands addressing a single message inside a contact thread by index",
	}

	readCmd := &cobra.Command{
		Use:   "read <contact-id> <index>",
		Short: "Mark a message as read",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid message index %q", args[1])
			}
			_, err = resolve().Contacts.ReadMessage(cmd.Context(), args[0], index)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <contact-id> <index>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid message index %q", args[1])
			}
			_, err = resolve().Contacts.DeleteMessage(cmd.Context(), args[0], index)
			return err
		},
	}

	cmd.AddCommand(readCmd)
	cmd.AddCommand(deleteCmd)

	return cmd
}
