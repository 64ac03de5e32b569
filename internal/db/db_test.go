package db

import (
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shared-city/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.Database {
	return config.Database{
		Net:      "tcp",
		Server:   "127.0.0.1:3306",
		DBName:   "shared_city",
		User:     "root",
		Password: "secret",
		Timeout:  2 * time.Second,
	}
}

func TestDSN(t *testing.T) {
	dsn, err := DSN(testDatabaseConfig())
	require.NoError(t, err)

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "shared_city", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.False(t, parsed.MultiStatements)

	dsn, err = MigrationDSN(testDatabaseConfig())
	require.NoError(t, err)
	parsed, err = mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, parsed.MultiStatements)
}

func TestDSN_BadTimeZone(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.TimeZone = "Mars/Olympus"

	_, err := DSN(cfg)
	assert.Error(t, err)
}

func TestIsDuplicateEntry(t *testing.T) {
	assert.True(t, IsDuplicateEntry(&mysql.MySQLError{Number: DuplicateEntry}))
	assert.False(t, IsDuplicateEntry(&mysql.MySQLError{Number: 1146}))
	assert.False(t, IsDuplicateEntry(errors.New("boom")))
}
