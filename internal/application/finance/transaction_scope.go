package finance

import (
	"context"

	"github.com/cargoflow/backend/internal/domain/finance"
)

// TransactionScope provides transactional access to the finance repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the finance repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
//
// Aggregate boundary notes:
//   - PayableRepo / ReceivableRepo: the two aggregate roots.
//   - ChargeRepo: charge line items are children of AccountsPayable but have
//     separate storage so individual slots can be upserted and summed.
//   - AdjustmentRepo: append-only collectible ledger under the receivable.
//   - ReceivableTransactionRepo: append-only posted payments.
type TransactionalRepositories interface {
	// PayableRepo returns the payable repository scoped to the current transaction
	PayableRepo() finance.AccountsPayableRepository
	// ReceivableRepo returns the receivable repository scoped to the current transaction
	ReceivableRepo() finance.AccountsReceivableRepository
	// ChargeRepo returns the charge line item repository scoped to the current transaction
	ChargeRepo() finance.ChargeRepository
	// AdjustmentRepo returns the collectible ledger repository scoped to the current transaction
	AdjustmentRepo() finance.AdjustmentRepository
	// ReceivableTransactionRepo returns the posted payment repository scoped to the current transaction
	ReceivableTransactionRepo() finance.ReceivableTransactionRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	payableRepo     finance.AccountsPayableRepository
	receivableRepo  finance.AccountsReceivableRepository
	chargeRepo      finance.ChargeRepository
	adjustmentRepo  finance.AdjustmentRepository
	transactionRepo finance.ReceivableTransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	payableRepo finance.AccountsPayableRepository,
	receivableRepo finance.AccountsReceivableRepository,
	chargeRepo finance.ChargeRepository,
	adjustmentRepo finance.AdjustmentRepository,
	transactionRepo finance.ReceivableTransactionRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		payableRepo:     payableRepo,
		receivableRepo:  receivableRepo,
		chargeRepo:      chargeRepo,
		adjustmentRepo:  adjustmentRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PayableRepo returns the payable repository.
func (s *NoOpTransactionScope) PayableRepo() finance.AccountsPayableRepository {
	return s.payableRepo
}

// ReceivableRepo returns the receivable repository.
func (s *NoOpTransactionScope) ReceivableRepo() finance.AccountsReceivableRepository {
	return s.receivableRepo
}

// ChargeRepo returns the charge line item repository.
func (s *NoOpTransactionScope) ChargeRepo() finance.ChargeRepository {
	return s.chargeRepo
}

// AdjustmentRepo returns the collectible ledger repository.
func (s *NoOpTransactionScope) AdjustmentRepo() finance.AdjustmentRepository {
	return s.adjustmentRepo
}

// ReceivableTransactionRepo returns the posted payment repository.
func (s *NoOpTransactionScope) ReceivableTransactionRepo() finance.ReceivableTransactionRepository {
	return s.transactionRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
