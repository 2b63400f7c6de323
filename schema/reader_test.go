package schema

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// openInformationSchema returns an in-memory database with a minimal
// information_schema attached to it.
func openInformationSchema(t *testing.T) *sqlx.DB {
	t.Helper()

	handle, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Error opening sqlite: %+v", err)
	}
	// attached databases are per connection
	handle.SetMaxOpenConns(1)
	t.Cleanup(func() {
		handle.Close()
	})

	stmts := []string{
		"attach database ':memory:' as information_schema",
		`create table information_schema.columns (
			TABLE_SCHEMA text, TABLE_NAME text, COLUMN_NAME text, COLUMN_TYPE text,
			IS_NULLABLE text, COLUMN_KEY text, COLUMN_DEFAULT text, EXTRA text,
			COLUMN_COMMENT text, ORDINAL_POSITION integer, DATA_TYPE text
		)`,
		"create table information_schema.tables (TABLE_SCHEMA text, TABLE_NAME text, TABLE_COMMENT text)",
		`insert into information_schema.columns values
			('shop', 'orders', 'total', 'decimal(10,2)', 'NO', '', '0.00', '', 'Order total', 3, 'decimal'),
			('shop', 'orders', 'id', 'bigint unsigned', 'NO', 'PRI', null, 'auto_increment', '', 1, 'bigint'),
			('shop', 'jobs', 'id', 'bigint unsigned', 'NO', 'PRI', null, 'auto_increment', '', 1, 'bigint'),
			('shop', 'orders', 'user_id', 'bigint unsigned', 'YES', 'MUL', null, '', '', 2, 'bigint'),
			('other', 'users', 'id', 'int', 'NO', 'PRI', null, '', '', 1, 'int')`,
		`insert into information_schema.tables values
			('shop', 'orders', 'Customer orders'),
			('shop', 'jobs', ''),
			('other', 'users', 'Not in schema')`,
	}
	for _, stmt := range stmts {
		if _, err := handle.Exec(stmt); err != nil {
			t.Fatalf("Error preparing information_schema: %+v", err)
		}
	}
	return handle
}

func TestReaderColumns(t *testing.T) {
	assert := func(ok bool, format string, params ...interface{}) {
		if !ok {
			t.Fatalf(format, params...)
		}
	}

	reader := NewReader(openInformationSchema(t))
	columns, err := reader.Columns(context.Background(), "shop")
	assert(err == nil, "Unexpected error: %+v", err)
	assert(len(columns) == 4, "Unexpected column count: %d != 4", len(columns))

	got := []string{}
	for _, column := range columns {
		got = append(got, column.Table+"."+column.Name)
	}
	want := []string{"jobs.id", "orders.id", "orders.user_id", "orders.total"}
	for k, v := range want {
		assert(got[k] == v, "Unexpected column at %d: %s != %s", k, got[k], v)
	}

	total := columns[3]
	assert(total.Type == "decimal(10,2)", "Unexpected type: %s", total.Type)
	assert(total.DataType == "decimal", "Unexpected data type: %s", total.DataType)
	assert(total.DefaultValue() == "0.00", "Unexpected default: %s", total.DefaultValue())
	assert(total.Comment == "Order total", "Unexpected comment: %s", total.Comment)

	id := columns[1]
	assert(id.Key == "PRI", "Unexpected key: %s", id.Key)
	assert(id.Extra == "auto_increment", "Unexpected extra: %s", id.Extra)
	assert(!id.Default.Valid, "Expected NULL default for id")
}

func TestReaderComments(t *testing.T) {
	reader := NewReader(openInformationSchema(t))
	comments, err := reader.Comments(context.Background(), "shop")
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if len(comments) != 1 || comments["orders"] != "Customer orders" {
		t.Fatalf("Unexpected comments: %#v", comments)
	}
}

func TestReaderEmptySchema(t *testing.T) {
	reader := NewReader(openInformationSchema(t))
	columns, err := reader.Columns(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if len(columns) != 0 {
		t.Fatalf("Unexpected column count: %d != 0", len(columns))
	}
}
