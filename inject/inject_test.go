package inject

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigResolve(t *testing.T) {
	assert := func(ok bool, format string, params ...interface{}) {
		if !ok {
			t.Fatalf(format, params...)
		}
	}

	env := map[string]string{
		"DB_HOST":     "db",
		"DB_USERNAME": "root",
		"DB_DATABASE": "shop",
	}
	getenv := func(key string) string {
		return env[key]
	}

	config := &Config{}
	assert(config.Resolve(getenv) == nil, "Unexpected error resolving config")
	assert(config.DB.DSN == "root@tcp(db:3306)/shop", "Unexpected DSN: %s", config.DB.DSN)
	assert(config.DB.Database == "shop", "Unexpected database: %s", config.DB.Database)
	assert(config.ProjectRoot == ".", "Unexpected project root: %s", config.ProjectRoot)

	config = &Config{}
	config.DB.DSN = "app:secret@tcp(mysql:3306)/inventory"
	assert(config.Resolve(getenv) == nil, "Unexpected error resolving config")
	assert(config.DB.Database == "inventory", "Unexpected database: %s", config.DB.Database)

	config = &Config{}
	err := config.Resolve(func(string) string { return "" })
	assert(err != nil, "Expected error without database configuration")
}

func TestDefaults(t *testing.T) {
	config := &Config{DefaultTables: "telescope_entries, pulse_values"}
	defaults := Defaults(config)
	if !defaults.Contains("pulse_values") || !defaults.Contains("jobs") {
		t.Fatalf("Unexpected defaults: %v", defaults)
	}
	if (&Config{}).ExtraDefaultTables() != nil {
		t.Fatalf("Expected no extra default tables")
	}
}

func TestConnectionOptions(t *testing.T) {
	config := &Config{}
	config.DB.DSN = "root@tcp(db:3306)/shop"
	config.DB.Retries = 3
	config.DB.RetryDelay = time.Second

	options := ConnectionOptions(config)
	if options.Credentials.DSN != config.DB.DSN || options.Retries != 3 {
		t.Fatalf("Unexpected options: %+v", options)
	}
	if options.Connector != nil {
		t.Fatalf("Didn't expect a connector without APM")
	}

	config.APM = true
	if ConnectionOptions(config).Connector == nil {
		t.Fatalf("Expected APM connector")
	}
}

func TestModels(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "models"), 0755); err != nil {
		t.Fatal(err)
	}
	manifest := []byte("fillable: [name]\n")
	if err := ioutil.WriteFile(filepath.Join(root, "models", "user.yaml"), manifest, 0644); err != nil {
		t.Fatal(err)
	}

	registry, err := Models(&Config{ProjectRoot: root})
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if user := registry.Resolve("users"); user == nil || user.Name != "models.User" {
		t.Fatalf("Unexpected user model: %#v", user)
	}
}

func TestConfigLoadProjectEnv(t *testing.T) {
	assert := func(ok bool, format string, params ...interface{}) {
		if !ok {
			t.Fatalf(format, params...)
		}
	}

	root := t.TempDir()
	dotenv := []byte("DB_HOST=db\nDB_USERNAME=root\nDB_DATABASE=shop\nDEFAULT_TABLES=telescope_entries\n")
	if err := ioutil.WriteFile(filepath.Join(root, ".env"), dotenv, 0644); err != nil {
		t.Fatal(err)
	}
	noenv := func(string) string { return "" }

	config := &Config{ProjectRoot: root}
	err := config.Load(noenv)
	assert(err == nil, "Unexpected error loading config: %+v", err)
	assert(config.DB.DSN == "root@tcp(db:3306)/shop", "Unexpected DSN: %s", config.DB.DSN)
	assert(config.DB.Database == "shop", "Unexpected database: %s", config.DB.Database)
	assert(config.DefaultTables == "telescope_entries", "Unexpected default tables: %s", config.DefaultTables)

	// process environment wins over the project .env
	env := map[string]string{"DB_DATABASE": "inventory"}
	config = &Config{ProjectRoot: root}
	err = config.Load(func(key string) string { return env[key] })
	assert(err == nil, "Unexpected error loading config: %+v", err)
	assert(config.DB.DSN == "root@tcp(db:3306)/inventory", "Unexpected DSN: %s", config.DB.DSN)
	assert(config.DB.Database == "inventory", "Unexpected database: %s", config.DB.Database)

	// a configured DSN is kept as is
	config = &Config{ProjectRoot: root}
	config.DB.DSN = "app@tcp(mysql:3306)/crm"
	assert(config.Load(noenv) == nil, "Unexpected error loading config")
	assert(config.DB.Database == "crm", "Unexpected database: %s", config.DB.Database)

	// a .env in the working directory doesn't count
	config = &Config{ProjectRoot: t.TempDir()}
	assert(config.Load(noenv) != nil, "Expected error without a project .env")
}
