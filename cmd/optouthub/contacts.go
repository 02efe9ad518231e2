package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optouthub/optouthub-go/optouthub"
)

func contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage suppressed contacts",
	}

	cmd.AddCommand(contactsCheckCmd())
	cmd.AddCommand(contactsSuppressCmd())
	cmd.AddCommand(contactsRmCmd())
	cmd.AddCommand(contactsListCmd())

	return cmd
}

func contactsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <email>",
		Short: "Check whether an address is suppressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			check, err := client.Contacts.Check(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to check contact: %w", err)
			}

			if !check.Suppressed {
				fmt.Printf("%s is not suppressed\n", args[0])
				return nil
			}

			fmt.Printf("%s is suppressed (%s)\n", args[0], check.Contact.Status)
			if check.Contact.Source != "" {
				fmt.Printf("Source: %s\n", check.Contact.Source)
			}
			fmt.Printf("Since: %s\n", check.Contact.CreatedAt.Format("2006-01-02 15:04:05"))

			return nil
		},
	}
}

func contactsSuppressCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "suppress <email>",
		Short: "Add an address to the suppression list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			contact, err := client.Contacts.Create(ctx, &optouthub.ContactCreateParams{
				Email:  args[0],
				Status: optouthub.StatusManual,
				Source: source,
			})
			if err != nil {
				return fmt.Errorf("failed to suppress contact: %w", err)
			}

			fmt.Printf("Suppressed %s (%s)\n", args[0], contact.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "cli", "where the suppression originated")

	return cmd
}

func contactsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a contact from the suppression list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.Contacts.Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove contact: %w", err)
			}

			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

func contactsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suppressed contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			page, err := client.Contacts.List(ctx, &optouthub.ListParams{Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list contacts: %w", err)
			}

			for _, contact := range page.Records {
				label := contact.Email
				if label == "" {
					label = contact.MD5
				}
				fmt.Printf("%s\t%s\t%s\n", contact.ID, label, contact.Status)
			}
			if page.HasMore() {
				fmt.Printf("... more available (next_token=%s)\n", *page.NextToken)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 25, "maximum number of contacts to list")

	return cmd
}
