package db

import (
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// DSNFromEnv builds a DSN out of the DB_HOST, DB_PORT, DB_USERNAME,
// DB_PASSWORD and DB_DATABASE variables of a framework `.env` file.
// It returns an empty string when DB_DATABASE is not set.
func DSNFromEnv(getenv func(string) string) string {
	database := getenv("DB_DATABASE")
	if database == "" {
		return ""
	}

	host, port := getenv("DB_HOST"), getenv("DB_PORT")
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3306"
	}

	config := mysql.NewConfig()
	config.User = getenv("DB_USERNAME")
	config.Passwd = getenv("DB_PASSWORD")
	config.Net = "tcp"
	config.Addr = net.JoinHostPort(host, port)
	config.DBName = database
	return config.FormatDSN()
}

// DatabaseName returns the schema name selected by a DSN
func DatabaseName(dsn string) (string, error) {
	config, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", errors.Wrap(err, "parsing DSN")
	}
	if config.DBName == "" {
		return "", errors.New("DSN doesn't select a database")
	}
	return config.DBName, nil
}
