package db

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Connect uses retry options set in ConnectionOptions{}. A zero
// Retries value makes a single attempt.
func Connect(ctx context.Context, options ConnectionOptions) (*sqlx.DB, error) {
	dsn := maskDSN(options.Credentials.DSN)

	if options.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.ConnectTimeout)
		defer cancel()
	}

	log.Println("connecting to database", dsn)

	attempts := options.Retries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for try := 1; try <= attempts; try++ {
		handle, err := ConnectWithOptions(ctx, options)
		if err == nil {
			return handle, nil
		}
		lastErr = err
		if try == attempts {
			break
		}
		log.Printf("can't connect, dsn=%s, err=%s, try=%d", dsn, err, try)

		select {
		case <-ctx.Done():
			return nil, errors.Errorf("db connection cancelled, dsn=%s: %s", dsn, ctx.Err())
		case <-time.After(options.RetryDelay):
		}
	}
	return nil, errors.Wrapf(lastErr, "could not connect, dsn=%s, tries=%d", dsn, attempts)
}
