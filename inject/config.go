package inject

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/titpetric/dbdocs/db"
)

// Config holds the command configuration
type Config struct {
	DB struct {
		DSN      string
		Driver   string
		Database string

		Retries        int
		RetryDelay     time.Duration
		ConnectTimeout time.Duration
	}

	// ProjectRoot holds the models folder and receives the document
	ProjectRoot string

	// DefaultTables is a comma separated list of extra framework tables
	DefaultTables string

	// APM enables Elastic APM tracing of the run
	APM bool
}

// Load reads <ProjectRoot>/.env and resolves the configuration. A
// variable set by getenv takes precedence over the same one in the
// file; a missing file is not an error.
func (c *Config) Load(getenv func(string) string) error {
	if c.ProjectRoot == "" {
		c.ProjectRoot = "."
	}

	filename := filepath.Join(c.ProjectRoot, ".env")
	env, err := godotenv.Read(filename)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "reading %s", filename)
	}

	lookup := func(key string) string {
		if val := getenv(key); val != "" {
			return val
		}
		return env[key]
	}
	if c.DB.DSN == "" {
		c.DB.DSN = lookup("DB_DSN")
	}
	if c.DefaultTables == "" {
		c.DefaultTables = lookup("DEFAULT_TABLES")
	}
	return c.Resolve(lookup)
}

// Resolve fills the DSN and database name from framework variables
// when they weren't configured directly
func (c *Config) Resolve(getenv func(string) string) error {
	if c.DB.DSN == "" {
		c.DB.DSN = db.DSNFromEnv(getenv)
	}
	if c.DB.DSN == "" {
		return errors.New("no database configured, set DB_DSN or DB_DATABASE")
	}
	if c.DB.Database == "" {
		name, err := db.DatabaseName(c.DB.DSN)
		if err != nil {
			return errors.Wrap(err, "can't determine database name")
		}
		c.DB.Database = name
	}
	if c.ProjectRoot == "" {
		c.ProjectRoot = "."
	}
	return nil
}

// ExtraDefaultTables splits DefaultTables into table names
func (c *Config) ExtraDefaultTables() []string {
	if strings.TrimSpace(c.DefaultTables) == "" {
		return nil
	}
	return strings.Split(c.DefaultTables, ",")
}
