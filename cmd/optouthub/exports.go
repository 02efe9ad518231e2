package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/optouthub/optouthub-go/internal/paths"
	"github.com/optouthub/optouthub-go/internal/storage"
	"github.com/optouthub/optouthub-go/optouthub"
)

const (
	exportPollInterval = 2 * time.Second
	exportPollTimeout  = 10 * time.Minute
)

func exportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exports",
		Short: "Work with suppression list exports",
	}

	cmd.AddCommand(exportsPullCmd())

	return cmd
}

func exportsPullCmd() *cobra.Command {
	var offerID string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the suppression list into the local cache",
		Long:  "Requests an md5 export, waits for it to complete, and replaces the local cache used by scrub.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := newClient()
			if err != nil {
				return err
			}

			export, err := client.Exports.Request(ctx, &optouthub.ExportRequestParams{
				OfferID: offerID,
				Format:  optouthub.ExportFormatMD5,
			})
			if err != nil {
				return fmt.Errorf("failed to request export: %w", err)
			}

			fmt.Printf("Requested export %s, waiting for completion...\n", export.ID)

			export, err = waitForExport(ctx, client, export.ID)
			if err != nil {
				return err
			}

			hashes, err := downloadHashes(ctx, client, export.ID)
			if err != nil {
				return err
			}

			if _, err := paths.EnsureDir(); err != nil {
				return err
			}
			dbPath, err := paths.DB()
			if err != nil {
				return err
			}

			cache, err := storage.OpenSuppressionCache(ctx, dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = cache.Close()
			}()

			if err := cache.ReplaceAll(ctx, hashes); err != nil {
				return fmt.Errorf("failed to store export: %w", err)
			}
			if err := cache.SetMeta(ctx, "last_export_id", export.ID); err != nil {
				return err
			}
			if err := cache.SetMeta(ctx, "last_pull_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
				return err
			}

			fmt.Printf("Cached %d suppressed hashes in %s\n", len(hashes), dbPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&offerID, "offer", "", "limit the export to a single offer")

	return cmd
}

// waitForExport polls until the export finishes, in either direction.
func waitForExport(ctx context.Context, client *optouthub.Client, id string) (*optouthub.Export, error) {
	ctx, cancel := context.WithTimeout(ctx, exportPollTimeout)
	defer cancel()

	ticker := time.NewTicker(exportPollInterval)
	defer ticker.Stop()

	for {
		export, err := client.Exports.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to poll export: %w", err)
		}

		switch export.Status {
		case optouthub.ExportStatusCompleted:
			return export, nil
		case optouthub.ExportStatusFailed, optouthub.ExportStatusCancelled:
			return nil, fmt.Errorf("export %s ended with status %s", id, export.Status)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out waiting for export %s", id)
		case <-ticker.C:
		}
	}
}

func downloadHashes(ctx context.Context, client *optouthub.Client, id string) ([]string, error) {
	body, err := client.Exports.Download(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to download export: %w", err)
	}
	defer func() {
		_ = body.Close()
	}()

	var hashes []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		hash := strings.TrimSpace(scanner.Text())
		if hash == "" {
			continue
		}
		hashes = append(hashes, strings.ToLower(hash))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	return hashes, nil
}
