package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Таблицы, к которым обращаются репозитории этого пакета
var repositoryTables = []string{
	"venues",
	"bookings",
	"discounts",
	"reviews",
	"chat_messages",
	"notifications",
	"owners",
	"tournaments",
}

func TestMigrationDefinesAllRepositoryTables(t *testing.T) {
	upSQL := readMigration(t, "001_init.up.sql")
	downSQL := readMigration(t, "001_init.down.sql")

	for _, table := range repositoryTables {
		assert.Contains(t, upSQL, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", table),
			"table %q is queried by a repository but not created by the migration", table)
		assert.Contains(t, downSQL, fmt.Sprintf("DROP TABLE IF EXISTS %s;", table),
			"table %q is not dropped by the down migration", table)
	}
}

func TestMigrationCreatesNoUnusedTables(t *testing.T) {
	upSQL := readMigration(t, "001_init.up.sql")

	known := make(map[string]bool, len(repositoryTables))
	for _, table := range repositoryTables {
		known[table] = true
	}

	for _, line := range strings.Split(upSQL, "\n") {
		name, ok := strings.CutPrefix(line, "CREATE TABLE IF NOT EXISTS ")
		if !ok {
			continue
		}
		name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), "("))
		assert.True(t, known[name], "migration creates table %q that no repository queries", name)
	}
}

func readMigration(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", name))
	require.NoError(t, err)
	return string(data)
}
