package db

import (
	"context"

	"database/sql"

	"go.elastic.co/apm/module/apmsql"
	// registers the traced "mysql" driver with apmsql
	_ "go.elastic.co/apm/module/apmsql/mysql"
)

// APMConnector opens a handle whose queries are reported as Elastic APM spans
func APMConnector(_ context.Context, credentials Credentials) (*sql.DB, error) {
	return apmsql.Open(credentials.DriverName, credentials.DSN)
}
