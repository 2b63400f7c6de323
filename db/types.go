package db

import (
	"context"
	"time"

	"database/sql"
)

// Connector produces a *sql.DB for credentials, wrapped into *sqlx.DB
// by ConnectWithOptions
type Connector func(context.Context, Credentials) (*sql.DB, error)

// Credentials select the driver and the database to connect to
type Credentials struct {
	DSN        string
	DriverName string
}

// ConnectionOptions configure Connect
type ConnectionOptions struct {
	Credentials Credentials

	// Connector is optional, sqlx.ConnectContext is used without it
	Connector Connector

	// Retries is the number of connection attempts
	Retries    int
	RetryDelay time.Duration

	// ConnectTimeout bounds all attempts together
	ConnectTimeout time.Duration
}
