package db

import (
	"regexp"

	"github.com/go-sql-driver/mysql"
)

var dsnMasker = regexp.MustCompile("(.)(?:.*)(.):(.)(?:.*)(.)@")

// maskDSN hides the password of a DSN for logging
func maskDSN(dsn string) string {
	if config, err := mysql.ParseDSN(dsn); err == nil {
		if config.Passwd != "" {
			config.Passwd = "****"
		}
		return config.FormatDSN()
	}
	return dsnMasker.ReplaceAllString(dsn, "$1****$2:$3****$4@")
}
