package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/model"
)

func restoreCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all data with a state dump",
		Long: `Replace all data with a JSON state dump produced by 'bg export state'.

Everything currently in the database is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0]) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var state model.State
			if err := json.Unmarshal(data, &state); err != nil {
				return fmt.Errorf("invalid state dump: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if !force {
				fmt.Printf("This will replace all current data with %d transactions and %d closed periods. Are you sure? [y/N]: ",
					len(state.Transactions), len(state.Records))
				reader := bufio.NewReader(os.Stdin)
				response, readErr := reader.ReadString('\n')
				if readErr != nil {
					return fmt.Errorf("failed to read confirmation: %w", readErr)
				}
				response = strings.ToLower(strings.TrimSpace(response))
				if response != "y" && response != "yes" {
					fmt.Println(cli.InfoStyle.Render("Restore canceled."))
					return nil
				}
			}

			if err := store.ImportState(ctx, &state); err != nil {
				return persistFailure("restore state", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored %d transactions and %d closed periods",
				len(state.Transactions), len(state.Records))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
