package migration

import (
	"io/fs"
	"testing"

	"github.com/Gthulhu/schedsim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMongoMigrationDisabled(t *testing.T) {
	assert.NoError(t, RunMongoMigration(config.MongoDBConfig{Enable: false}))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(mongoMigrations, "mongo/*.up.json")
	require.NoError(t, err)
	downs, err := fs.Glob(mongoMigrations, "mongo/*.down.json")
	require.NoError(t, err)
	assert.NotEmpty(t, ups)
	assert.Equal(t, len(ups), len(downs))
}

func TestMigrationURL(t *testing.T) {
	cfg := config.MongoDBConfig{User: "u", Password: "p", Host: "h", Port: "1", Database: "db"}
	assert.Equal(t, "mongodb://u:p@h:1/db?authSource=admin", migrationURL(cfg))
	cfg.User = ""
	assert.Equal(t, "mongodb://h:1/db", migrationURL(cfg))
}
