package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type fakeMigrator struct {
	tables  map[string]bool
	columns map[string]bool // "table.column"

	createTableErr error
	createdTables  []string
}

func tableKey(dst interface{}) string {
	if t, ok := dst.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", dst)
}

func (f *fakeMigrator) HasTable(dst interface{}) bool {
	return f.tables[tableKey(dst)]
}

func (f *fakeMigrator) CreateTable(dst ...interface{}) error {
	if f.createTableErr != nil {
		return f.createTableErr
	}
	for _, d := range dst {
		f.tables[tableKey(d)] = true
		f.createdTables = append(f.createdTables, tableKey(d))
	}
	return nil
}

func (f *fakeMigrator) HasColumn(dst interface{}, field string) bool {
	return f.columns[tableKey(dst)+"."+field]
}

type fakeExecer struct {
	stmts   []string
	errFor  map[string]error // keyed by column name
	applied *fakeMigrator
	table   string
}

func (f *fakeExecer) Exec(sql string, values ...interface{}) *gorm.DB {
	f.stmts = append(f.stmts, sql)
	for col, err := range f.errFor {
		if strings.Contains(sql, "ADD COLUMN "+col+" ") {
			return &gorm.DB{Error: err}
		}
	}
	// Mirror the ALTER into the fake catalog so idempotence is observable.
	if f.applied != nil {
		parts := strings.Fields(sql)
		if len(parts) >= 6 {
			f.applied.columns[f.table+"."+parts[5]] = true
		}
	}
	return &gorm.DB{}
}

type specTable struct{ name string }

func (s specTable) TableName() string { return s.name }

func testSpec() TableSpec {
	return TableSpec{
		Table: "patients",
		Model: specTable{name: "patients"},
		OptionalColumns: []ColumnSpec{
			{Name: "appointment_date", Type: "date"},
			{Name: "is_active", Type: "boolean", Default: "FALSE"},
		},
	}
}

func TestEnsureCreatesMissingTableAndColumns(t *testing.T) {
	m := &fakeMigrator{tables: map[string]bool{}, columns: map[string]bool{}}
	ex := &fakeExecer{applied: m, table: "patients"}

	if err := ensure(m, ex, testSpec()); err != nil {
		t.Fatalf("ensure() error = %v", err)
	}

	if !m.tables["patients"] {
		t.Error("ensure() did not create the patients table")
	}
	if len(ex.stmts) != 2 {
		t.Fatalf("ensure() ran %d ALTER statements, want 2: %v", len(ex.stmts), ex.stmts)
	}
	if want := "ALTER TABLE patients ADD COLUMN is_active boolean DEFAULT FALSE"; ex.stmts[1] != want {
		t.Errorf("ensure() stmt = %q, want %q", ex.stmts[1], want)
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	m := &fakeMigrator{tables: map[string]bool{}, columns: map[string]bool{}}
	ex := &fakeExecer{applied: m, table: "patients"}

	if err := ensure(m, ex, testSpec()); err != nil {
		t.Fatalf("first ensure() error = %v", err)
	}
	firstCount := len(ex.stmts)

	if err := ensure(m, ex, testSpec()); err != nil {
		t.Fatalf("second ensure() error = %v", err)
	}

	if len(ex.stmts) != firstCount {
		t.Errorf("second ensure() ran %d extra statements, want 0", len(ex.stmts)-firstCount)
	}
	if len(m.createdTables) != 1 {
		t.Errorf("table created %d times, want 1", len(m.createdTables))
	}
}

func TestEnsureToleratesRacingColumnAdd(t *testing.T) {
	// Another request adds the column between HasColumn and the ALTER;
	// Postgres answers with duplicate_column, which must read as success.
	dup := &pgconn.PgError{Code: "42701", Message: `column "is_active" of relation "patients" already exists`}
	m := &fakeMigrator{tables: map[string]bool{"patients": true}, columns: map[string]bool{}}
	ex := &fakeExecer{applied: m, table: "patients", errFor: map[string]error{"is_active": dup}}

	if err := ensure(m, ex, testSpec()); err != nil {
		t.Fatalf("ensure() error = %v, want nil on duplicate column", err)
	}
}

func TestEnsureSurfacesRealErrors(t *testing.T) {
	boom := errors.New("connection reset")
	m := &fakeMigrator{tables: map[string]bool{"patients": true}, columns: map[string]bool{}}
	ex := &fakeExecer{applied: m, table: "patients", errFor: map[string]error{"appointment_date": boom}}

	err := ensure(m, ex, testSpec())
	if err == nil {
		t.Fatal("ensure() error = nil, want wrapped failure")
	}
	if !errors.Is(err, boom) {
		t.Errorf("ensure() error = %v, want wrapping %v", err, boom)
	}
}

func TestIsDuplicateObjectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate column code", &pgconn.PgError{Code: "42701"}, true},
		{"duplicate table code", &pgconn.PgError{Code: "42P07"}, true},
		{"already exists text", errors.New(`relation "patients" already exists`), true},
		{"unique violation", &pgconn.PgError{Code: "23505", Message: "duplicate key"}, false},
		{"plain failure", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateObjectError(tt.err); got != tt.want {
				t.Errorf("isDuplicateObjectError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
