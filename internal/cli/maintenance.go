package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"crud_testbench/internal/db"
	"crud_testbench/internal/seed"
	"crud_testbench/internal/store"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the records and operation_logs tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gdb, err := open()
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "tables are up to date")
			return nil
		},
	}
}

func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample records when the records table is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gdb, err := open()
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			seeded, err := seed.FirstSetup(cmd.Context(), gdb, time.Now().UTC())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "database seeded")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "records already present, nothing seeded")
			}
			return nil
		},
	}
}

// NewOpLogCommand groups maintenance of the operation log. The log is
// unbounded unless somebody runs prune.
func NewOpLogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oplog",
		Short: "Operation log maintenance",
	}

	var keep int
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the most recent operation log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep < 0 {
				return fmt.Errorf("--keep must not be negative")
			}
			_, gdb, err := open()
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			removed, err := store.NewOperationLogStore(gdb).Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d operation log entries\n", removed)
			return nil
		},
	}
	prune.Flags().IntVar(&keep, "keep", 1000, "number of most recent entries to keep")
	cmd.AddCommand(prune)

	return cmd
}
