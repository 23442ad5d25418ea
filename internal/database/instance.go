package database

import (
	"context"
	"fmt"

	"github.com/alanwells064/cornbot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	profileRepo contract.ProfileRepo
	bucketRepo  contract.BucketRepo
	logRepo     contract.LogRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		profileRepo: newProfileRepo(db),
		bucketRepo:  newBucketRepo(db),
		logRepo:     newLogRepo(db),
	}
}

func (i *instance) Profile() contract.ProfileRepo {
	return i.profileRepo
}

func (i *instance) Bucket() contract.BucketRepo {
	return i.bucketRepo
}

func (i *instance) Log() contract.LogRepo {
	return i.logRepo
}

// WithTransaction executes fn within a database transaction. Nested calls reuse
// the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
