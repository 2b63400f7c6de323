package inject

import (
	"context"
	"log"
	"path/filepath"

	"github.com/google/wire"
	"github.com/jmoiron/sqlx"

	"github.com/titpetric/dbdocs/db"
	"github.com/titpetric/dbdocs/docs"
	"github.com/titpetric/dbdocs/example"
	"github.com/titpetric/dbdocs/model"
	"github.com/titpetric/dbdocs/schema"
)

// ConnectionOptions produces db.ConnectionOptions from *Config
func ConnectionOptions(config *Config) db.ConnectionOptions {
	options := db.ConnectionOptions{
		Credentials: db.Credentials{
			DSN:        config.DB.DSN,
			DriverName: config.DB.Driver,
		},
		Retries:        config.DB.Retries,
		RetryDelay:     config.DB.RetryDelay,
		ConnectTimeout: config.DB.ConnectTimeout,
	}
	if config.APM {
		options.Connector = db.APMConnector
	}
	return options
}

// Connect produces the database handle and its cleanup
func Connect(ctx context.Context, options db.ConnectionOptions) (*sqlx.DB, func(), error) {
	handle, err := db.Connect(ctx, options)
	if err != nil {
		return nil, nil, err
	}
	return handle, func() {
		handle.Close()
	}, nil
}

// Models loads the model registry from the project models folder
func Models(config *Config) (*model.Registry, error) {
	registry, err := model.LoadDir(filepath.Join(config.ProjectRoot, "models"))
	if err != nil {
		return nil, err
	}
	registry.LogSkipped()
	log.Printf("Loaded %d model(s)", len(registry.Models()))
	return registry, nil
}

// Defaults produces the framework default table set
func Defaults(config *Config) schema.Defaults {
	return schema.NewDefaults(config.ExtraDefaultTables()...)
}

// Inject is the main ProviderSet for wire
var Inject = wire.NewSet(
	ConnectionOptions,
	Connect,
	Models,
	Defaults,
	schema.NewReader,
	example.NewFetcher,
	docs.NewGenerator,
	wire.Bind(new(sqlx.QueryerContext), new(*sqlx.DB)),
	wire.Bind(new(docs.ColumnReader), new(*schema.Reader)),
	wire.Bind(new(docs.RowFetcher), new(*example.Fetcher)),
)
