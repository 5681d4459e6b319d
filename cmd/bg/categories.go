package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/common"
	"github.com/elias000000000/bg/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
		Long:  `List, add, remove, and rename the categories used to group spending entries.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())
	cmd.AddCommand(renameCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(settings.Categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories configured. Use 'bg categories add' to create one."))
				return nil
			}

			for _, name := range settings.Categories {
				marker := " "
				if name == model.FallbackCategory {
					marker = cli.SubtleStyle.Render(" (default)")
				}
				fmt.Printf("%s%s\n", name, marker)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if !settings.AddCategory(name) {
				return fmt.Errorf("category %q: %w", name, common.ErrDuplicateEntry)
			}
			if err := store.SaveSettings(ctx, settings); err != nil {
				return persistFailure("save settings", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q", name)))
			return nil
		},
	}
}

func removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a category",
		Long: `Remove a category from the list.

Existing entries keep their category label; only new entries are affected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			if name == model.FallbackCategory {
				return fmt.Errorf("the default category %q cannot be removed", name)
			}

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if !settings.RemoveCategory(name) {
				return fmt.Errorf("no category %q: %w", name, common.ErrNotFound)
			}
			if err := store.SaveSettings(ctx, settings); err != nil {
				return persistFailure("save settings", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed category %q", name)))
			return nil
		},
	}
}

func renameCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			from, to := args[0], args[1]

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if settings.HasCategory(to) {
				return fmt.Errorf("category %q: %w", to, common.ErrDuplicateEntry)
			}
			if !settings.RenameCategory(from, to) {
				return fmt.Errorf("no category %q: %w", from, common.ErrNotFound)
			}
			if err := store.SaveSettings(ctx, settings); err != nil {
				return persistFailure("save settings", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Renamed %q to %q", from, to)))
			return nil
		},
	}
}
