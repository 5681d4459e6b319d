package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/common"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a spending entry from the current period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			_, store, _, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, id); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("no entry %s in the current period; archived entries cannot be deleted", id)
				}
				return persistFailure("delete transaction", err)
			}

			fmt.Println(cli.FormatSuccess("Entry deleted"))
			return nil
		},
	}
}
