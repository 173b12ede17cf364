package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cargoflow/backend/internal/domain/booking"
	"github.com/cargoflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBookingRepository creates a GormBookingRepository with a mocked SQL connection
func newMockBookingRepository(t *testing.T) (*GormBookingRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormBookingRepository(gormDB), mock, mockDB
}

func TestGormBookingRepository_FindByID(t *testing.T) {
	t.Run("finds existing booking", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		bookingID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "booking_number", "hwb_number", "mode", "origin", "destination", "status", "shipper_name"}).
			AddRow(bookingID, now, now, 1, "BKG-2025-001", "HWB-44821", "SEA", "Manila", "Cebu", "PENDING", "Acme Trading")

		mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(bookingID, 1).
			WillReturnRows(rows)

		b, err := repo.FindByID(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.NotNil(t, b)
		assert.Equal(t, bookingID, b.ID)
		assert.Equal(t, "BKG-2025-001", b.BookingNumber)
		assert.Equal(t, booking.ModeSea, b.Mode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for non-existent booking", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		bookingID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(bookingID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		b, err := repo.FindByID(context.Background(), bookingID)

		assert.Error(t, err)
		assert.Nil(t, b)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingRepository_FindByBookingNumber(t *testing.T) {
	t.Run("finds booking by number", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		bookingID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "booking_number", "mode", "origin", "destination", "status", "shipper_name"}).
			AddRow(bookingID, now, now, 1, "BKG-2025-002", "LAND", "Davao", "Cagayan de Oro", "IN_TRANSIT", "Southern Mills")

		mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE booking_number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("BKG-2025-002", 1).
			WillReturnRows(rows)

		b, err := repo.FindByBookingNumber(context.Background(), "BKG-2025-002")

		assert.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, booking.StatusInTransit, b.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingRepository_SaveWithLock(t *testing.T) {
	t.Run("returns conflict when version does not match", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		b, err := booking.NewBooking("BKG-2025-003", "HWB-1", booking.ModeSea, "Manila", "Iloilo", "Rice", "Acme Trading")
		require.NoError(t, err)
		require.NoError(t, b.TransitionTo(booking.StatusInTransit)) // bumps version to 2

		mock.ExpectExec(`UPDATE "bookings" SET .+ WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SaveWithLock(context.Background(), b)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		bookingID := uuid.New()

		mock.ExpectExec(`DELETE FROM "bookings" WHERE id = \$1`).
			WithArgs(bookingID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), bookingID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
