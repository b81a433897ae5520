package db

import (
	"context"

	"gorm.io/gorm"
)

// QueryExecutor wraps a gorm handle with the context-aware helpers the
// repositories share.
type QueryExecutor struct {
	DB *gorm.DB
}

// NewQueryExecutor creates a new instance of QueryExecutor.
func NewQueryExecutor(db *gorm.DB) *QueryExecutor {
	return &QueryExecutor{DB: db}
}

// Conn returns the handle bound to ctx.
func (qe *QueryExecutor) Conn(ctx context.Context) *gorm.DB {
	return qe.DB.WithContext(ctx)
}

// Count returns the number of rows of model that match the given conditions.
func (qe *QueryExecutor) Count(ctx context.Context, model interface{}, conditions map[string]interface{}) (int64, error) {
	var count int64
	err := qe.Conn(ctx).Model(model).Where(conditions).Count(&count).Error
	return count, err
}

// Exists checks if a record matching the conditions exists.
func (qe *QueryExecutor) Exists(ctx context.Context, model interface{}, conditions map[string]interface{}) (bool, error) {
	count, err := qe.Count(ctx, model, conditions)
	return count > 0, err
}

// Transaction executes a set of operations within a database transaction.
func (qe *QueryExecutor) Transaction(ctx context.Context, txFunc func(tx *gorm.DB) error) error {
	return qe.Conn(ctx).Transaction(txFunc)
}
