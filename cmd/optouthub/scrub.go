package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optouthub/optouthub-go/internal/paths"
	"github.com/optouthub/optouthub-go/internal/storage"
	"github.com/optouthub/optouthub-go/optouthub"
)

func scrubCmd() *cobra.Command {
	var (
		column int
		out    string
	)

	cmd := &cobra.Command{
		Use:   "scrub <csv>",
		Short: "Remove suppressed addresses from a CSV file",
		Long:  "Drops rows whose email appears in the local suppression cache. Run `optouthub exports pull` first to fill the cache.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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

			count, err := cache.Count(ctx)
			if err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("local suppression cache is empty; run `optouthub exports pull` first")
			}

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer func() {
				_ = in.Close()
			}()

			var dst io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer func() {
					_ = f.Close()
				}()
				dst = f
			}

			kept, dropped, err := scrubCSV(ctx, cache, in, dst, column)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Kept %d rows, dropped %d suppressed\n", kept, dropped)

			return nil
		},
	}

	cmd.Flags().IntVar(&column, "column", 0, "zero-based index of the email column")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write scrubbed rows to a file instead of stdout")

	return cmd
}

func scrubCSV(ctx context.Context, cache *storage.SuppressionCache, in io.Reader, out io.Writer, column int) (kept, dropped int, err error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(out)
	defer writer.Flush()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return kept, dropped, fmt.Errorf("failed to read csv: %w", err)
		}

		if column >= len(row) {
			return kept, dropped, fmt.Errorf("row has %d columns, email column %d out of range", len(row), column)
		}

		email := strings.TrimSpace(row[column])
		suppressed := false
		if email != "" && strings.Contains(email, "@") {
			suppressed, err = cache.Contains(ctx, optouthub.HashEmailMD5(email))
			if err != nil {
				return kept, dropped, err
			}
		}

		if suppressed {
			dropped++
			continue
		}

		if err := writer.Write(row); err != nil {
			return kept, dropped, fmt.Errorf("failed to write csv: %w", err)
		}
		kept++
	}

	if err := writer.Error(); err != nil {
		return kept, dropped, fmt.Errorf("failed to flush csv: %w", err)
	}

	return kept, dropped, nil
}
