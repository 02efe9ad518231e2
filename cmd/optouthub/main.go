package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/optouthub/optouthub-go/internal/version"
	"github.com/optouthub/optouthub-go/optouthub"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "optouthub",
		Short:   "Manage OptOutHub suppression lists from your terminal",
		Version: version.Get(),
	}

	rootCmd.AddCommand(contactsCmd())
	rootCmd.AddCommand(webhooksCmd())
	rootCmd.AddCommand(exportsCmd())
	rootCmd.AddCommand(scrubCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

// newClient builds an API client from the environment. Every subcommand
// that talks to the API goes through it.
func newClient() (*optouthub.Client, error) {
	apiKey := os.Getenv("OPTOUTHUB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPTOUTHUB_API_KEY is not set")
	}

	opts := []optouthub.Option{}
	if baseURL := os.Getenv("OPTOUTHUB_BASE_URL"); baseURL != "" {
		opts = append(opts, optouthub.WithBaseURL(baseURL))
	}

	return optouthub.New(apiKey, opts...), nil
}
