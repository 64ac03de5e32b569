package db

import (
	"fmt"
	"time"

	"github.com/shared-city/backend/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const DuplicateEntry = 1062

// DSN builds the go-sql-driver connection string for cfg.
func DSN(cfg config.Database) (string, error) {
	conf, err := mysqlConfig(cfg)
	if err != nil {
		return "", err
	}
	return conf.FormatDSN(), nil
}

// MigrationDSN is DSN with multi statement support, required by migration files.
func MigrationDSN(cfg config.Database) (string, error) {
	conf, err := mysqlConfig(cfg)
	if err != nil {
		return "", err
	}
	conf.MultiStatements = true
	return conf.FormatDSN(), nil
}

func mysqlConfig(cfg config.Database) (*mysql.Config, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time load location failed: %w", err)
	}
	conf := mysql.NewConfig()
	conf.Net = cfg.Net
	conf.Addr = cfg.Server
	conf.User = cfg.User
	conf.Passwd = cfg.Password
	conf.DBName = cfg.DBName
	conf.Timeout = cfg.Timeout
	conf.Loc = location
	conf.ParseTime = true
	conf.Params = map[string]string{"charset": "utf8mb4"}

	return conf, nil
}

func New(cfg config.Database) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	dbConn, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)

	if err := dbConn.Ping(); err != nil {
		return nil, err
	}

	return dbConn, nil
}

// IsDuplicateEntry reports whether err is a MySQL unique key violation.
func IsDuplicateEntry(err error) bool {
	//nolint:errorlint
	mysqlError, ok := err.(*mysql.MySQLError)
	return ok && mysqlError.Number == DuplicateEntry
}
