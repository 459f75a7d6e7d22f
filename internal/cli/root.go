// Package cli wires configuration, database and HTTP server behind the
// crudbench command line.
package cli

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"crud_testbench/internal/config"
	"crud_testbench/internal/db"
)

// NewRootCommand creates the crudbench command. Running it without a
// subcommand starts the server.
func NewRootCommand() *cobra.Command {
	serve := NewServeCommand()

	cmd := &cobra.Command{
		Use:          "crudbench",
		Short:        "CRUD test bench with an audited operation log",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewOpLogCommand())

	return cmd
}

// open loads the config and connects; the caller closes the handle.
func open() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	gdb, err := db.Connect(db.Options{Driver: cfg.DBDriver, DSN: cfg.DSN, LogLevel: cfg.DBLogLevel})
	if err != nil {
		return cfg, nil, err
	}
	return cfg, gdb, nil
}
