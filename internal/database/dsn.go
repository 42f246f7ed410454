package database

import (
	"github.com/go-sql-driver/mysql"

	"github.com/rickgao/orthocfg/internal/config"
)

// DSN builds a go-sql-driver/mysql connection string from settings. dbName
// may be empty for a server-level administrative connection, which is what
// the provisioning step needs to issue CREATE DATABASE.
func DSN(settings config.ConnectionSettings, dbName string) string {
	cfg := mysql.NewConfig()
	cfg.User = settings.User
	cfg.Passwd = settings.Pass
	cfg.Net = "tcp"
	cfg.Addr = settings.Addr()
	cfg.DBName = dbName
	return cfg.FormatDSN()
}
