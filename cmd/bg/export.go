package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/common"
	"github.com/elias000000000/bg/internal/config"
	"github.com/elias000000000/bg/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full spending history",
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportSheetsCmd())
	cmd.AddCommand(exportStateCmd())

	return cmd
}

func exportStateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Dump the full application state as JSON",
		Long: `Dump the full application state as JSON: settings, every
transaction, and the archive. The dump restores losslessly with 'bg restore'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, store, _, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			state, err := store.ExportState(ctx)
			if err != nil {
				return fmt.Errorf("failed to export state: %w", err)
			}

			data, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode state: %w", err)
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("State written to %s", output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func exportCSVCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export all transactions as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, _, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rows, err := eng.BuildExportRows(ctx)
			if err != nil {
				return fmt.Errorf("failed to build export: %w", err)
			}

			out := os.Stdout
			if output != "" {
				f, createErr := os.Create(output) // #nosec G304
				if createErr != nil {
					return fmt.Errorf("failed to create %s: %w", output, createErr)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			w := csv.NewWriter(out)
			if err := w.Write([]string{"Date", "Description", "Category", "Amount", "Period"}); err != nil {
				return fmt.Errorf("failed to write CSV header: %w", err)
			}
			for _, row := range rows {
				record := []string{
					row.Date.Format("2006-01-02"),
					row.Description,
					row.Category,
					row.Amount.StringFixed(2),
					row.PeriodLabel,
				}
				if err := w.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("failed to flush CSV: %w", err)
			}

			if output != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(rows), output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func exportSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Export the spending report to Google Sheets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sheetsConfig, err := config.LoadSheetsConfig()
			if err != nil {
				return fmt.Errorf("sheets not configured: %w", err)
			}

			eng, store, _, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rows, err := eng.BuildExportRows(ctx)
			if err != nil {
				return fmt.Errorf("failed to build export: %w", err)
			}
			summary, err := eng.BuildReportSummary(ctx)
			if err != nil {
				return fmt.Errorf("failed to build report summary: %w", err)
			}
			records, err := store.ListPeriodRecords(ctx)
			if err != nil {
				return fmt.Errorf("failed to list archive: %w", err)
			}

			writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}

			if err := writer.Write(ctx, rows, records, summary); err != nil {
				if common.IsRetryable(err) {
					fmt.Fprintln(os.Stderr, cli.FormatInfo("The Sheets API is throttling; try again in a minute."))
				}
				return fmt.Errorf("failed to write report: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to Google Sheets", len(rows))))
			return nil
		},
	}
}
