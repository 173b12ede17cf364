package finance

import (
	"context"

	"github.com/cargoflow/backend/internal/domain/booking"
	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPayableRepository is a mock implementation of finance.AccountsPayableRepository
type MockPayableRepository struct {
	mock.Mock
}

func (m *MockPayableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountsPayable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AccountsPayable), args.Error(1)
}

func (m *MockPayableRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*finance.AccountsPayable, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AccountsPayable), args.Error(1)
}

func (m *MockPayableRepository) Save(ctx context.Context, ap *finance.AccountsPayable) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockPayableRepository) SaveWithLock(ctx context.Context, ap *finance.AccountsPayable) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockPayableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReceivableRepository is a mock implementation of finance.AccountsReceivableRepository
type MockReceivableRepository struct {
	mock.Mock
}

func (m *MockReceivableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountsReceivable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AccountsReceivable), args.Error(1)
}

func (m *MockReceivableRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*finance.AccountsReceivable, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AccountsReceivable), args.Error(1)
}

func (m *MockReceivableRepository) FindBookingIDsWithoutReceivable(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockReceivableRepository) Save(ctx context.Context, ar *finance.AccountsReceivable) error {
	args := m.Called(ctx, ar)
	return args.Error(0)
}

func (m *MockReceivableRepository) SaveWithLock(ctx context.Context, ar *finance.AccountsReceivable) error {
	args := m.Called(ctx, ar)
	return args.Error(0)
}

func (m *MockReceivableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChargeRepository is a mock implementation of finance.ChargeRepository
type MockChargeRepository struct {
	mock.Mock
}

func (m *MockChargeRepository) FindByPayableID(ctx context.Context, payableID uuid.UUID) ([]finance.ChargeLineItem, error) {
	args := m.Called(ctx, payableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.ChargeLineItem), args.Error(1)
}

func (m *MockChargeRepository) FindByCategory(ctx context.Context, payableID uuid.UUID, category finance.ChargeCategory) (*finance.ChargeLineItem, error) {
	args := m.Called(ctx, payableID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ChargeLineItem), args.Error(1)
}

func (m *MockChargeRepository) Upsert(ctx context.Context, item *finance.ChargeLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockChargeRepository) SumByPayableID(ctx context.Context, payableID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, payableID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockAdjustmentRepository is a mock implementation of finance.AdjustmentRepository
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) Append(ctx context.Context, adj *finance.CollectibleAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) FindByReceivableID(ctx context.Context, receivableID uuid.UUID) ([]finance.CollectibleAdjustment, error) {
	args := m.Called(ctx, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.CollectibleAdjustment), args.Error(1)
}

// MockReceivableTransactionRepository is a mock implementation of finance.ReceivableTransactionRepository
type MockReceivableTransactionRepository struct {
	mock.Mock
}

func (m *MockReceivableTransactionRepository) Save(ctx context.Context, txn *finance.ReceivableTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockReceivableTransactionRepository) FindByReceivableID(ctx context.Context, receivableID uuid.UUID) ([]finance.ReceivableTransaction, error) {
	args := m.Called(ctx, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.ReceivableTransaction), args.Error(1)
}

func (m *MockReceivableTransactionRepository) SumByReceivableID(ctx context.Context, receivableID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, receivableID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockBookingRepository is a mock implementation of booking.Repository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByBookingNumber(ctx context.Context, bookingNumber string) (*booking.Booking, error) {
	args := m.Called(ctx, bookingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, filter booking.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveWithLock(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) Count(ctx context.Context, filter booking.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// newTestScope bundles fresh mocks behind a NoOpTransactionScope
func newTestScope() (*NoOpTransactionScope, *MockPayableRepository, *MockReceivableRepository, *MockChargeRepository, *MockAdjustmentRepository, *MockReceivableTransactionRepository) {
	payableRepo := new(MockPayableRepository)
	receivableRepo := new(MockReceivableRepository)
	chargeRepo := new(MockChargeRepository)
	adjustmentRepo := new(MockAdjustmentRepository)
	txnRepo := new(MockReceivableTransactionRepository)
	scope := NewNoOpTransactionScope(payableRepo, receivableRepo, chargeRepo, adjustmentRepo, txnRepo)
	return scope, payableRepo, receivableRepo, chargeRepo, adjustmentRepo, txnRepo
}
