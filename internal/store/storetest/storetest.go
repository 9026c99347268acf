// Package storetest opens throwaway in-memory SQLite databases for tests.
package storetest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farellandr/gigboard/internal/models"
)

var ErrInjected = errors.New("injected store failure")

// Open returns a migrated database private to the calling test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// FailCreates makes every INSERT into table fail after the row is written, so
// only a rollback can undo it.
func FailCreates(t testing.TB, db *gorm.DB, table string) {
	t.Helper()
	err := db.Callback().Create().After("gorm:create").Register("storetest:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

// FailUpdates is FailCreates for UPDATE statements.
func FailUpdates(t testing.TB, db *gorm.DB, table string) {
	t.Helper()
	err := db.Callback().Update().After("gorm:update").Register("storetest:fail_update_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

func Count(t testing.TB, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

// InUse reports connections currently checked out of the pool.
func InUse(t testing.TB, db *gorm.DB) int {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	return sqlDB.Stats().InUse
}
