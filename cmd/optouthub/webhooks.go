package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optouthub/optouthub-go/optouthub"
)

func webhooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhook endpoints",
	}

	cmd.AddCommand(webhooksListCmd())
	cmd.AddCommand(webhooksCreateCmd())
	cmd.AddCommand(webhooksRmCmd())

	return cmd
}

func webhooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered webhook endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			page, err := client.Webhooks.List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			for _, endpoint := range page.Records {
				state := "active"
				if !endpoint.Active {
					state = "disabled"
				}
				fmt.Printf("%s\t%s\t%s\t%s\n", endpoint.ID, endpoint.URL, state, strings.Join(endpoint.Events, ","))
			}

			return nil
		},
	}
}

func webhooksCreateCmd() *cobra.Command {
	var (
		events  []string
		piiMode string
	)

	cmd := &cobra.Command{
		Use:   "create <url>",
		Short: "Register a webhook endpoint",
		Long:  "Registers a webhook endpoint and prints its signing secret. The secret is only shown once; store it now.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			endpoint, err := client.Webhooks.Create(ctx, &optouthub.WebhookCreateParams{
				URL:     args[0],
				Events:  events,
				PIIMode: optouthub.PIIMode(piiMode),
			})
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			fmt.Printf("Created webhook %s\n", endpoint.ID)
			fmt.Printf("Signing secret: %s\n", endpoint.Secret)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&events, "event", nil, "event types to deliver (default: all)")
	cmd.Flags().StringVar(&piiMode, "pii-mode", string(optouthub.PIIModeHashed), "pii mode for event data: full, hashed, or none")

	return cmd
}

func webhooksRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a webhook endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.Webhooks.Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
