package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/common"
	"github.com/elias000000000/bg/internal/model"
	"github.com/elias000000000/bg/internal/period"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change budget, payday, theme, or name",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(setPaydayCmd())
	cmd.AddCommand(setThemeCmd())
	cmd.AddCommand(setNameCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget <amount>",
		Short: "Set the budget per period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseBudget(args[0])
			if err != nil {
				return err
			}

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings.Budget = amount
			if err := store.SaveSettings(ctx, settings); err != nil {
				return persistFailure("save settings", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget set to %s per period", cli.FormatAmount(amount))))
			return nil
		},
	}
}

func setPaydayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payday <day>",
		Short: "Set the day of month your pay arrives",
		Long: `Set the day of month your pay arrives (1-28).

Periods run from payday to the day before the next payday. Changing the
payday redraws the current period; already closed periods are unaffected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			day, err := strconv.Atoi(args[0])
			if err != nil {
				return common.NewValidationError("payday", fmt.Sprintf("%q is not a number", args[0]))
			}
			if err := period.ValidatePayday(day); err != nil {
				return err
			}

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings.Payday = day
			if err := store.SaveSettings(ctx, settings); err != nil {
				return persistFailure("save settings", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Payday set to day %d", day)))
			return nil
		},
	}
}

func setThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <name>",
		Short: "Set the color theme (standard, dark, mint, sunset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			theme := model.Theme(args[0])
			if !model.ValidTheme(theme) {
				return common.NewValidationError("theme", fmt.Sprintf("unknown theme %q, valid themes: standard, dark, mint, sunset", args[0]))
			}

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings.Theme = theme
			if err := store.SaveSettings(ctx, settings); err != nil {
				return persistFailure("save settings", err)
			}

			cli.UseTheme(theme)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Theme set to %s", theme)))
			return nil
		},
	}
}

func setNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <name>",
		Short: "Set the name shown in the status greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings.Name = args[0]
			if err := store.SaveSettings(ctx, settings); err != nil {
				return persistFailure("save settings", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Nice to meet you, %s!", settings.Name)))
			return nil
		},
	}
}
