package main

import (
	"context"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/SentimensRG/sigctx"
	"github.com/namsral/flag"
	"github.com/pkg/errors"
	"go.elastic.co/apm"

	"github.com/titpetric/dbdocs/docs"
	"github.com/titpetric/dbdocs/inject"
)

func main() {
	config := &inject.Config{}
	flag.StringVar(&config.DB.Driver, "db-driver", "mysql", "Database driver")
	flag.StringVar(&config.DB.DSN, "db-dsn", "", "DSN for database connection")
	flag.StringVar(&config.DB.Database, "db-database", "", "Schema name to document (default: from DSN)")
	flag.IntVar(&config.DB.Retries, "db-retries", 1, "Connection attempts")
	flag.DurationVar(&config.DB.RetryDelay, "db-retry-delay", time.Second, "Delay between connection attempts")
	flag.DurationVar(&config.DB.ConnectTimeout, "db-connect-timeout", 10*time.Second, "Connection timeout")
	flag.StringVar(&config.ProjectRoot, "project-root", ".", "Project folder with models/ and the generated document")
	flag.StringVar(&config.DefaultTables, "default-tables", "", "Extra framework default tables, comma separated")
	flag.BoolVar(&config.APM, "apm", false, "Report the run to Elastic APM")
	flag.Parse()

	// a framework .env in the project root provides DB_DATABASE and friends
	if err := config.Load(os.Getenv); err != nil {
		log.Fatalf("Error in configuration: %+v", err)
	}

	ctx := sigctx.New()

	var tx *apm.Transaction
	if config.APM {
		tx = apm.DefaultTracer.StartTransaction("db-docs "+config.DB.Database, "cli")
		ctx = apm.ContextWithTransaction(ctx, tx)
	}

	err := func() error {
		generator, cleanup, err := newGenerator(ctx, config)
		if err != nil {
			return errors.Wrap(err, "Error connecting to database")
		}
		defer cleanup()
		return run(ctx, config, generator)
	}()
	if tx != nil {
		if err != nil {
			apm.CaptureError(ctx, err).Send()
		}
		tx.End()
		apm.DefaultTracer.Flush(nil)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

// documentGenerator is implemented by *docs.Generator
type documentGenerator interface {
	Generate(ctx context.Context, database string) ([]byte, error)
}

func run(ctx context.Context, config *inject.Config, generator documentGenerator) error {
	contents, err := generator.Generate(ctx, config.DB.Database)
	if err != nil {
		return errors.Wrap(err, "Error generating documentation")
	}

	filename := docs.Filename(config.ProjectRoot, config.DB.Database)
	size, err := docs.Write(filename, contents)
	if err != nil {
		return errors.Wrap(err, "Error writing documentation")
	}

	log.Printf("Documentation generated: %s (%d bytes)", filename, size)
	return nil
}
