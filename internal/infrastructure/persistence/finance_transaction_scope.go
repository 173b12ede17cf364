package persistence

import (
	"context"

	appfinance "github.com/cargoflow/backend/internal/application/finance"
	"github.com/cargoflow/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all finance repositories
// within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// PayableRepo returns the payable repository scoped to the current transaction.
func (r *gormTransactionalRepositories) PayableRepo() finance.AccountsPayableRepository {
	return NewGormAccountsPayableRepository(r.tx)
}

// ReceivableRepo returns the receivable repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ReceivableRepo() finance.AccountsReceivableRepository {
	return NewGormAccountsReceivableRepository(r.tx)
}

// ChargeRepo returns the charge line item repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ChargeRepo() finance.ChargeRepository {
	return NewGormChargeRepository(r.tx)
}

// AdjustmentRepo returns the collectible ledger repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AdjustmentRepo() finance.AdjustmentRepository {
	return NewGormAdjustmentRepository(r.tx)
}

// ReceivableTransactionRepo returns the posted payment repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ReceivableTransactionRepo() finance.ReceivableTransactionRepository {
	return NewGormReceivableTransactionRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appfinance.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appfinance.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
