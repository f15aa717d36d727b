package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].version)
	assert.Equal(t, "initial schema", migrations[0].description)
	for _, table := range []string{"users", "brand_profiles", "content_items", "social_accounts"} {
		assert.True(t, strings.Contains(migrations[0].sql, "CREATE TABLE IF NOT EXISTS "+table), table)
	}

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].version, migrations[i].version)
	}
}
