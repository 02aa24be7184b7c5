package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gamblebot/internal/common/format"
	"github.com/KirkDiggler/gamblebot/internal/models"
	"github.com/KirkDiggler/gamblebot/internal/repositories/ledger"
)

func newStatsCmd() *cobra.Command {
	var gameName string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the running totals from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ValidateLedger(); err != nil {
				return err
			}

			if gameName == "" {
				gameName = cfg.Gamble.GameName
			}

			repo, closeLedger, err := newLedgerRepo(cfg)
			if err != nil {
				return err
			}
			defer closeLedger()

			output, err := repo.GetLedger(cmd.Context(), &ledger.GetLedgerInput{
				GameName: gameName,
			})
			if err != nil {
				return err
			}

			return printStandings(cmd.OutOrStdout(), output.Ledger.Standings())
		},
	}

	cmd.Flags().StringVar(&gameName, "game", "", "Ledger to print, defaults to the configured game name")

	return cmd
}

func printStandings(w io.Writer, entries []*models.LedgerEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No games have been played yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PLAYER\tNAME\tSCORE\t")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", e.ID, e.DisplayName, format.Number(e.Score))
	}
	return tw.Flush()
}
