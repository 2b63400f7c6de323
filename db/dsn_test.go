package db

import (
	"testing"
)

func TestCleanDSN(t *testing.T) {
	assert := func(ok bool, format string, params ...interface{}) {
		if !ok {
			t.Fatalf(format, params...)
		}
	}

	cases := map[string]string{
		"root@tcp(db:3306)/app":                      "root@tcp(db:3306)/app?charset=utf8mb4",
		"root@tcp(db:3306)/app?parseTime=false":      "root@tcp(db:3306)/app?parseTime=false&charset=utf8mb4",
		"root@tcp(db:3306)/app?charset=latin1":       "root@tcp(db:3306)/app?charset=latin1",
		"root@tcp(db:3306)/app?charset=utf8&loc=UTC": "root@tcp(db:3306)/app?charset=utf8&loc=UTC",
	}
	for input, want := range cases {
		got := cleanDSN(input)
		assert(got == want, "Unexpected DSN for %q: %q != %q", input, got, want)
	}
}

func TestMaskDSN(t *testing.T) {
	cases := map[string]string{
		"root:secret@tcp(db:3306)/app": "root:****@tcp(db:3306)/app",
		"root@tcp(db:3306)/app":        "root@tcp(db:3306)/app",
		// not a go-sql-driver DSN
		"admin:secret@localhost": "a****n:s****t@localhost",
	}
	for input, want := range cases {
		if got := maskDSN(input); got != want {
			t.Errorf("Unexpected masked DSN for %q: %q != %q", input, got, want)
		}
	}
}

func TestDSNFromEnv(t *testing.T) {
	assert := func(ok bool, format string, params ...interface{}) {
		if !ok {
			t.Fatalf(format, params...)
		}
	}

	env := map[string]string{
		"DB_HOST":     "db",
		"DB_PORT":     "3307",
		"DB_USERNAME": "laravel",
		"DB_PASSWORD": "secret",
		"DB_DATABASE": "shop",
	}
	getenv := func(key string) string {
		return env[key]
	}

	dsn := DSNFromEnv(getenv)
	assert(dsn == "laravel:secret@tcp(db:3307)/shop", "Unexpected DSN: %q", dsn)

	name, err := DatabaseName(dsn)
	assert(err == nil, "Unexpected error: %+v", err)
	assert(name == "shop", "Unexpected database name: %q", name)

	delete(env, "DB_HOST")
	delete(env, "DB_PORT")
	dsn = DSNFromEnv(getenv)
	assert(dsn == "laravel:secret@tcp(127.0.0.1:3306)/shop", "Unexpected DSN with defaults: %q", dsn)

	delete(env, "DB_DATABASE")
	assert(DSNFromEnv(getenv) == "", "Expected empty DSN without DB_DATABASE")
}

func TestDatabaseName(t *testing.T) {
	if _, err := DatabaseName("root@tcp(db:3306)/"); err == nil {
		t.Fatalf("Expected error for DSN without database")
	}
	if _, err := DatabaseName("not a dsn"); err == nil {
		t.Fatalf("Expected error for invalid DSN")
	}
}
