// Package store scopes a unit of work to one gorm transaction.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RunInTx begins a transaction on db, runs fn and commits when fn returns nil.
// Errors and panics roll the transaction back. The transaction is ended exactly
// once on every path, which hands its connection back to the pool.
func RunInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	ended := false
	defer func() {
		if ended {
			return
		}
		r := recover()
		if rbErr := tx.Rollback().Error; rbErr != nil && err == nil && r == nil {
			err = fmt.Errorf("rollback: %w", rbErr)
		}
		if r != nil {
			panic(r)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	ended = true
	if cErr := tx.Commit().Error; cErr != nil {
		return fmt.Errorf("commit: %w", cErr)
	}
	return nil
}
