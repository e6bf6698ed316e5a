package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/pursuit/internal/report"
	"github.com/trknhr/pursuit/internal/store"
)

func NewRunsCmd(o *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List saved simulation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunStore(o, func(s store.RunStore) error {
				runs, err := s.ListRuns(limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no saved runs")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), report.RunsTable(runs))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print the lexicons and scores of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunStore(o, func(s store.RunStore) error {
				run, err := s.LoadRun(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "run %s (%s, seed %d, %s precision)\n\n",
					run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Seed, run.Precision)
				return report.Write(out, run.Summary)
			})
		},
	})

	return cmd
}

func withRunStore(o *rootOptions, fn func(store.RunStore) error) error {
	db, err := store.Open(o.cfg.Store.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(store.NewSQLRunStore(db))
}
