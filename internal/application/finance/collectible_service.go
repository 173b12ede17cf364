package finance

import (
	"context"
	"fmt"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CollectibleService maintains the running collectible balance and the paid
// total of a receivable. Every mutation pairs the balance write with its
// ledger entry in one short transaction.
type CollectibleService struct {
	scope TransactionScope
}

// NewCollectibleService creates a new CollectibleService
func NewCollectibleService(scope TransactionScope) *CollectibleService {
	return &CollectibleService{scope: scope}
}

// CollectibleLedger is a receivable's adjustment history together with the
// balance the entries fold to
type CollectibleLedger struct {
	Entries []finance.CollectibleAdjustment `json:"entries"`
	Balance decimal.NullDecimal             `json:"balance"`
}

// Ledger returns the receivable's collectible adjustment history in insertion
// order, with the balance the entries replay to. An empty ledger folds to a
// NULL balance.
func (s *CollectibleService) Ledger(ctx context.Context, receivableID uuid.UUID) (*CollectibleLedger, error) {
	if receivableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECEIVABLE", "Receivable ID cannot be empty")
	}

	var ledger *CollectibleLedger
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ReceivableRepo().FindByID(ctx, receivableID); err != nil {
			return fmt.Errorf("failed to load receivable: %w", err)
		}

		entries, err := repos.AdjustmentRepo().FindByReceivableID(ctx, receivableID)
		if err != nil {
			return fmt.Errorf("failed to load adjustments: %w", err)
		}

		ledger = &CollectibleLedger{
			Entries: entries,
			Balance: finance.FoldAdjustments(entries),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// DeductFromCollectible subtracts a payment amount from the receivable's
// collectible balance and appends the matching PAYMENT ledger entry.
// The balance is seeded from gross income when it was never set; it is not
// clamped at zero.
func (s *CollectibleService) DeductFromCollectible(ctx context.Context, receivableID uuid.UUID, amount decimal.Decimal) (*finance.AccountsReceivable, error) {
	if receivableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECEIVABLE", "Receivable ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Deduction amount must be positive")
	}

	var ar *finance.AccountsReceivable
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ar, err = repos.ReceivableRepo().FindByID(ctx, receivableID)
		if err != nil {
			return fmt.Errorf("failed to load receivable: %w", err)
		}

		if err := ar.DeductCollectible(amount); err != nil {
			return err
		}

		adj, err := finance.NewPaymentAdjustment(ar.ID, amount)
		if err != nil {
			return err
		}
		if err := repos.AdjustmentRepo().Append(ctx, adj); err != nil {
			return fmt.Errorf("failed to append adjustment: %w", err)
		}

		if err := repos.ReceivableRepo().SaveWithLock(ctx, ar); err != nil {
			return fmt.Errorf("failed to save receivable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ar, nil
}

// RecomputeAmountPaid overwrites amount_paid with the sum of the posted
// receivable transactions
func (s *CollectibleService) RecomputeAmountPaid(ctx context.Context, receivableID uuid.UUID) (*finance.AccountsReceivable, error) {
	if receivableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECEIVABLE", "Receivable ID cannot be empty")
	}

	var ar *finance.AccountsReceivable
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ar, err = repos.ReceivableRepo().FindByID(ctx, receivableID)
		if err != nil {
			return fmt.Errorf("failed to load receivable: %w", err)
		}

		total, err := repos.ReceivableTransactionRepo().SumByReceivableID(ctx, receivableID)
		if err != nil {
			return fmt.Errorf("failed to sum transactions: %w", err)
		}

		if err := ar.SetAmountPaid(total); err != nil {
			return err
		}
		if err := repos.ReceivableRepo().SaveWithLock(ctx, ar); err != nil {
			return fmt.Errorf("failed to save receivable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ar, nil
}

// PostPayment records a payment transaction, deducts it from the collectible
// balance, and brings amount_paid back in sync, all in one transaction.
func (s *CollectibleService) PostPayment(ctx context.Context, receivableID uuid.UUID, amount decimal.Decimal, reference string) (*finance.AccountsReceivable, error) {
	if receivableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECEIVABLE", "Receivable ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	var ar *finance.AccountsReceivable
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		ar, err = repos.ReceivableRepo().FindByID(ctx, receivableID)
		if err != nil {
			return fmt.Errorf("failed to load receivable: %w", err)
		}

		txn, err := finance.NewReceivableTransaction(ar.ID, amount, reference)
		if err != nil {
			return err
		}
		if err := repos.ReceivableTransactionRepo().Save(ctx, txn); err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}

		if err := ar.DeductCollectible(amount); err != nil {
			return err
		}
		adj, err := finance.NewPaymentAdjustment(ar.ID, amount)
		if err != nil {
			return err
		}
		if err := repos.AdjustmentRepo().Append(ctx, adj); err != nil {
			return fmt.Errorf("failed to append adjustment: %w", err)
		}

		total, err := repos.ReceivableTransactionRepo().SumByReceivableID(ctx, ar.ID)
		if err != nil {
			return fmt.Errorf("failed to sum transactions: %w", err)
		}
		if err := ar.SetAmountPaid(total); err != nil {
			return err
		}

		if err := repos.ReceivableRepo().SaveWithLock(ctx, ar); err != nil {
			return fmt.Errorf("failed to save receivable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ar, nil
}
