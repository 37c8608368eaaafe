package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ColumnSpec describes an optional column added after the base schema:
// its name, SQL type (which may carry constraints such as REFERENCES),
// and an optional default expression.
type ColumnSpec struct {
	Name    string
	Type    string
	Default string
}

// TableSpec pairs a GORM model (defining the base columns) with the
// optional columns that later schema revisions introduced.
type TableSpec struct {
	Table           string
	Model           interface{}
	OptionalColumns []ColumnSpec
}

// migrator is the slice of gorm.Migrator the ensure pass needs.
type migrator interface {
	HasTable(dst interface{}) bool
	CreateTable(dst ...interface{}) error
	HasColumn(dst interface{}, field string) bool
}

// execer is the slice of *gorm.DB used to run ALTER TABLE statements.
type execer interface {
	Exec(sql string, values ...interface{}) *gorm.DB
}

// EnsureSchema guarantees each table exists with at least the columns its
// spec names. It is idempotent and safe under concurrent invocation: a
// table or column created by a racing caller is treated as success.
func EnsureSchema(db *gorm.DB, specs ...TableSpec) error {
	return ensure(db.Migrator(), db, specs...)
}

func ensure(m migrator, ex execer, specs ...TableSpec) error {
	for _, spec := range specs {
		if !m.HasTable(spec.Model) {
			if err := m.CreateTable(spec.Model); err != nil && !isDuplicateObjectError(err) {
				return fmt.Errorf("failed to create table %s: %w", spec.Table, err)
			}
		}

		for _, col := range spec.OptionalColumns {
			if m.HasColumn(spec.Model, col.Name) {
				continue
			}

			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", spec.Table, col.Name, col.Type)
			if col.Default != "" {
				stmt += " DEFAULT " + col.Default
			}

			if err := ex.Exec(stmt).Error; err != nil {
				// A concurrent request may have added the column between
				// the existence check and the ALTER.
				if isDuplicateObjectError(err) {
					continue
				}
				return fmt.Errorf("failed to add column %s.%s: %w", spec.Table, col.Name, err)
			}
			logrus.Infof("Added column %s.%s", spec.Table, col.Name)
		}
	}
	return nil
}

// isDuplicateObjectError reports whether err is PostgreSQL complaining
// that a table (42P07) or column (42701) already exists.
func isDuplicateObjectError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "42P07" || pgErr.Code == "42701" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}
