package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
)

// savingsQuotes rotates with the day of month on the status screen.
var savingsQuotes = []string{
	"Spare in der Zeit, dann hast du in der Not.",
	"Wer den Rappen nicht ehrt, ist des Frankens nicht wert.",
	"Kleine Beträge summieren sich zu grossen Zielen.",
	"Erst sparen, dann kaufen.",
	"Jeder nicht ausgegebene Franken arbeitet für dich.",
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current period's budget status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			now := time.Now()
			status, err := eng.Status(ctx, now)
			if err != nil {
				return fmt.Errorf("failed to compute status: %w", err)
			}

			greeting := "Hallo!"
			if settings.Name != "" {
				greeting = fmt.Sprintf("Hallo, %s!", settings.Name)
			}
			fmt.Println(cli.TitleStyle.Render(greeting))
			fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("Period: %s (%s - %s)",
				status.Period.Label,
				status.Period.Start.Format("02.01.2006"),
				status.Period.End.Format("02.01.2006"))))

			fmt.Printf("Budget:    %s\n", cli.FormatAmount(status.Budget))
			fmt.Printf("Spent:     %s\n", cli.FormatAmount(status.Spent))
			fmt.Printf("Remaining: %s\n", cli.AmountStyle.Render(cli.FormatAmount(status.Remaining)))
			fmt.Printf("Saved:     %s\n", cli.FormatAmount(status.Saved))

			if status.LowBalance {
				fmt.Println()
				fmt.Println(cli.FormatWarning("Your remaining balance is running low!"))
			}

			if len(status.ByCategory) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("By category"))

				categories := make([]string, 0, len(status.ByCategory))
				for category := range status.ByCategory {
					categories = append(categories, category)
				}
				sort.Slice(categories, func(i, j int) bool {
					return status.ByCategory[categories[i]].GreaterThan(status.ByCategory[categories[j]])
				})

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, category := range categories {
					fmt.Fprintf(w, "%s\t%s\n", category, cli.FormatAmount(status.ByCategory[category]))
				}
				_ = w.Flush()
			}

			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render(savingsQuotes[now.Day()%len(savingsQuotes)]))
			return nil
		},
	}
}
