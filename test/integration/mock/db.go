package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxClearAttempts = 5

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a shared in-memory SQLite connection for integration tests.
// All scenarios run against the same connection; ClearDB resets it
// between scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb returns the singleton test database, creating and migrating it on
// first use. The models map keys are table names as used by the db
// assertion steps.
func NewDb(schema string, models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = open(schema, models)
	})
	return sharedDb
}

func open(schema string, models map[string]any) *Db {
	// A single shared connection keeps the in-memory database alive for
	// the whole test run.
	sqlDb, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDb.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDb}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{
		DbConn: conn,
		schema: schema,
		models: models,
	}

	if err := d.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to prepare test database: %s", err))
	}
	return d
}

// ClearDB recreates the schema and empties every registered table. It is
// called before each scenario.
func (d *Db) ClearDB() error {
	for attempt := 1; attempt <= maxClearAttempts; attempt++ {
		err := d.DbConn.Exec("ATTACH ':memory:' AS " + d.schema).Error
		if err != nil && !strings.Contains(err.Error(), "is already in use") {
			return err
		}
		if err == nil {
			if err := d.migrate(); err != nil {
				continue
			}

			time.Sleep(200 * time.Millisecond)
			_ = d.DbConn.Exec("PRAGMA schema_version").Error

			if err := d.checkTables(); err != nil {
				continue
			}
		}

		if err := d.truncate(); err != nil {
			continue
		}
		return nil
	}
	return fmt.Errorf("failed to clear test database after %d attempts", maxClearAttempts)
}

// migrate drops and recreates every registered table inside an exclusive
// transaction.
func (d *Db) migrate() (err error) {
	tx := d.DbConn.Exec("BEGIN EXCLUSIVE")
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			err = fmt.Errorf("panic during test database migration: %v", rec)
		} else if err != nil {
			if txErr := tx.Exec("ROLLBACK").Error; txErr != nil {
				panic(txErr)
			}
		} else {
			if txErr := tx.Exec("COMMIT").Error; txErr != nil {
				panic(txErr)
			}
		}
	}()

	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)

		tableName, err := d.tableName(tx, m)
		if err != nil {
			return err
		}
		if err := tx.Exec("DROP TABLE IF EXISTS " + tableName).Error; err != nil {
			return err
		}
	}

	if err := tx.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, m := range modelList {
		if !tx.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}
	return nil
}

// truncate empties every registered table and resets autoincrement state.
func (d *Db) truncate() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}

		tableName, err := d.tableName(d.DbConn, m)
		if err != nil {
			return err
		}
		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", tableName).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

func (d *Db) checkTables() error {
	for _, m := range d.models {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
		if err := d.DbConn.Find(&m).Error; err != nil {
			return fmt.Errorf("failed to query table for model %T: %w", m, err)
		}
	}
	return nil
}

func (d *Db) tableName(tx *gorm.DB, model any) (string, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
