package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", path)
	t.Setenv("DB_LOG_LEVEL", "silent")
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed", "oplog"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestMigrateSeedPrune(t *testing.T) {
	useSQLite(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "tables are up to date")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "database seeded")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	out, err = run(t, "oplog", "prune", "--keep", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 3 operation log entries")
}

func TestPruneRejectsNegativeKeep(t *testing.T) {
	useSQLite(t)

	_, err := run(t, "oplog", "prune", "--keep", "-1")
	assert.Error(t, err)
}

func TestMissingDSNFails(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("MYSQL_DSN", "")

	_, err := run(t, "migrate")
	assert.Error(t, err)
}
