package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ConnectWithOptions connects to the database described by options.
// The DSN gets a utf8mb4 charset unless it sets one.
func ConnectWithOptions(ctx context.Context, options ConnectionOptions) (*sqlx.DB, error) {
	credentials := options.Credentials
	if credentials.DSN == "" {
		return nil, errors.New("DSN not provided")
	}
	if credentials.DriverName == "" {
		credentials.DriverName = "mysql"
	}
	credentials.DSN = cleanDSN(credentials.DSN)

	if options.Connector == nil {
		return sqlx.ConnectContext(ctx, credentials.DriverName, credentials.DSN)
	}
	return connectWith(ctx, options.Connector, credentials)
}

// connectWith opens a handle through connector. Connectors like
// APMConnector only call sql.Open, which doesn't dial, so the handle is
// pinged to report an unreachable server here and not on the first query.
func connectWith(ctx context.Context, connector Connector, credentials Credentials) (*sqlx.DB, error) {
	handle, err := connector(ctx, credentials)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s handle", credentials.DriverName)
	}
	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, errors.Wrap(err, "ping")
	}
	return sqlx.NewDb(handle, credentials.DriverName), nil
}
