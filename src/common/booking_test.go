package common

import (
	"errors"
	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/lib"
	"hbs/src/models"
	"hbs/src/types"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return gormDB, mock
}

func testPaymentConfig() *config.PaymentConfig {
	return config.NewPaymentConfig(&config.PaymentConfig{
		Provider:  "razorpay",
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		Currency:  "INR",
	})
}

var bookingColumns = []string{
	"id", "hotel_id", "room_id", "user_id",
	"check_in_date", "check_out_date", "rooms_count",
	"amount", "currency", "status",
	"payment_order_id", "payment_id", "created_at",
}

type fakeGateway struct {
	orderedAmount   int64
	orderedCurrency string
	orderErr        error
	refundedPayment string
	refundedAmount  int64
	refundErr       error
}

func (g *fakeGateway) CreateOrder(amountMinor int64, currency string, receipt string) (string, error) {
	g.orderedAmount = amountMinor
	g.orderedCurrency = currency
	if g.orderErr != nil {
		return "", g.orderErr
	}
	return "order_fake", nil
}

func (g *fakeGateway) Refund(paymentID string, amountMinor int64) error {
	g.refundedPayment = paymentID
	g.refundedAmount = amountMinor
	return g.refundErr
}

func TestHasBookingExpired(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	booking := &models.Booking{Status: types.BOOKING_RESERVED}
	booking.CreatedAt = created

	assert.False(t, HasBookingExpired(booking, created.Add(5*time.Minute)))
	// The window boundary itself has not lapsed yet.
	assert.False(t, HasBookingExpired(booking, created.Add(BookingHoldWindow)))
	assert.True(t, HasBookingExpired(booking, created.Add(BookingHoldWindow+time.Second)))

	booking.Status = types.BOOKING_GUESTS_ADDED
	assert.True(t, HasBookingExpired(booking, created.Add(time.Hour)))

	// Post-payment states never lapse.
	for _, status := range []types.BookingStatus{
		types.BOOKING_PAYMENTS_PENDING,
		types.BOOKING_CONFIRMED,
		types.BOOKING_CANCELLED,
	} {
		booking.Status = status
		assert.False(t, HasBookingExpired(booking, created.Add(time.Hour)))
	}
}

func TestEffectiveStatus(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	booking := &models.Booking{Status: types.BOOKING_RESERVED}
	booking.CreatedAt = created

	assert.Equal(t, types.BOOKING_RESERVED, EffectiveStatus(booking, created.Add(time.Minute)))
	assert.Equal(t, types.BOOKING_EXPIRED, EffectiveStatus(booking, created.Add(time.Hour)))
}

var hotelColumns = []string{"id", "name", "city", "active", "owner_id"}
var roomColumns = []string{"id", "hotel_id", "type", "base_price", "total_count"}

func availableInventoryRows(days ...time.Time) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "hotel_id", "room_id", "date", "total_count", "reserved_count", "booked_count", "base_price", "closed"})
	for i, day := range days {
		rows.AddRow(uint(11+i), 1, 2, day, 10, 0, 0, 1000.0, false)
	}
	return rows
}

func TestInitialiseBookingReservesAndPrices(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	// Tuesday and Wednesday, so no weekend surcharge applies.
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows(hotelColumns).AddRow(1, "Lakeside", "Pune", true, 9))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(2, 1, "Deluxe", 1000.0, 10))
	mock.ExpectQuery(`SELECT \* FROM "inventories".*FOR UPDATE`).
		WillReturnRows(availableInventoryRows(checkIn, checkOut))
	mock.ExpectExec(`UPDATE "inventories"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	booking, err := InitialiseBooking(3, 1, 2, checkIn, checkOut, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), booking.ID)
	assert.Equal(t, types.BOOKING_RESERVED, booking.Status)
	// 2 nights at the base rate of 1000, times 2 rooms.
	assert.Equal(t, 4000.0, booking.Amount)
	assert.Equal(t, "INR", booking.Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitialiseBookingRejectsInactiveHotel(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows(hotelColumns).AddRow(1, "Lakeside", "Pune", false, 9))
	mock.ExpectRollback()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := InitialiseBooking(3, 1, 2, day, day, 1)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitialiseBookingRejectsForeignRoom(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows(hotelColumns).AddRow(1, "Lakeside", "Pune", true, 9))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(2, 8, "Deluxe", 1000.0, 10))
	mock.ExpectRollback()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := InitialiseBooking(3, 1, 2, day, day, 1)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitialiseBookingShortInventory(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows(hotelColumns).AddRow(1, "Lakeside", "Pune", true, 9))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(2, 1, "Deluxe", 1000.0, 10))
	// Only one of the two nights has capacity left.
	mock.ExpectQuery(`SELECT \* FROM "inventories".*FOR UPDATE`).
		WillReturnRows(availableInventoryRows(checkIn))
	mock.ExpectRollback()

	_, err := InitialiseBooking(3, 1, 2, checkIn, checkOut, 2)
	assert.ErrorIs(t, err, ErrInventoryUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func reservedBookingRows(userID uint, status types.BookingStatus, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns).
		AddRow(7, 1, 2, userID,
			time.Now(), time.Now().AddDate(0, 0, 1), 1,
			1000.0, "INR", string(status),
			nil, nil, createdAt)
}

func TestAddGuestsGuards(t *testing.T) {
	d, mock := newMockDB(t)
	db.NewDB(d)

	t.Run("rejects a caller that does not own the booking", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(reservedBookingRows(99, types.BOOKING_RESERVED, time.Now()))
		mock.ExpectRollback()

		_, err := AddGuests(3, 7, []uint{21})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("rejects a lapsed reservation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(reservedBookingRows(3, types.BOOKING_RESERVED, time.Now().Add(-time.Hour)))
		mock.ExpectRollback()

		_, err := AddGuests(3, 7, []uint{21})
		assert.ErrorIs(t, err, ErrBookingExpired)
	})

	t.Run("rejects a booking past the guest stage", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(reservedBookingRows(3, types.BOOKING_PAYMENTS_PENDING, time.Now()))
		mock.ExpectRollback()

		_, err := AddGuests(3, 7, []uint{21})
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	t.Run("rejects a guest the caller does not have", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(reservedBookingRows(3, types.BOOKING_RESERVED, time.Now()))
		// Only one of the two requested guests belongs to the caller.
		mock.ExpectQuery(`SELECT \* FROM "guests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).AddRow(21, 3, "Asha"))
		mock.ExpectRollback()

		_, err := AddGuests(3, 7, []uint{21, 22})
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitiatePaymentNotConfigured(t *testing.T) {
	config.NewPaymentConfig(&config.PaymentConfig{})
	_, err := InitiatePayment(3, 7)
	assert.ErrorIs(t, err, ErrPaymentNotConfigured)
}

func TestInitiatePaymentGuards(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)
	lib.NewPaymentGateway(&fakeGateway{})

	t.Run("rejects a caller that does not own the booking", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(reservedBookingRows(99, types.BOOKING_RESERVED, time.Now()))
		mock.ExpectRollback()

		_, err := InitiatePayment(3, 7)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("rejects a lapsed reservation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(reservedBookingRows(3, types.BOOKING_GUESTS_ADDED, time.Now().Add(-time.Hour)))
		mock.ExpectRollback()

		_, err := InitiatePayment(3, 7)
		assert.ErrorIs(t, err, ErrBookingExpired)
	})

	t.Run("rejects a booking already paid", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(reservedBookingRows(3, types.BOOKING_CONFIRMED, time.Now().Add(-time.Hour)))
		mock.ExpectRollback()

		_, err := InitiatePayment(3, 7)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitiatePaymentCreatesOrder(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)
	gateway := &fakeGateway{}
	lib.NewPaymentGateway(gateway)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(reservedBookingRows(3, types.BOOKING_GUESTS_ADDED, time.Now()))
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	url, err := InitiatePayment(3, 7)
	assert.NoError(t, err)
	assert.Equal(t, "/payments/7/status?orderId=order_fake", url)
	assert.Equal(t, int64(100000), gateway.orderedAmount)
	assert.Equal(t, "INR", gateway.orderedCurrency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitiatePaymentGatewayFailure(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)
	lib.NewPaymentGateway(&fakeGateway{orderErr: errors.New("gateway down")})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(reservedBookingRows(3, types.BOOKING_RESERVED, time.Now()))
	mock.ExpectRollback()

	_, err := InitiatePayment(3, 7)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapturePaymentRejectsBadSignature(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	err := CapturePayment("pay_xyz", "order_abc", "not-a-signature")
	assert.ErrorIs(t, err, ErrSignatureInvalid)
	// Nothing may touch the database on a failed verification.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapturePaymentNotConfigured(t *testing.T) {
	config.NewPaymentConfig(&config.PaymentConfig{})
	err := CapturePayment("pay_xyz", "order_abc", "sig")
	assert.ErrorIs(t, err, ErrPaymentNotConfigured)
}

func TestCapturePaymentIsIdempotent(t *testing.T) {
	cfg := testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	signature := lib.PaymentSignature("order_abc", "pay_xyz", cfg.KeySecret)

	created := time.Now().Add(-time.Hour)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings".*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(7, 1, 2, 3,
				time.Now(), time.Now().AddDate(0, 0, 1), 1,
				1000.0, "INR", string(types.BOOKING_CONFIRMED),
				"order_abc", "pay_xyz", created))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(3, "someone@example.com"))
	mock.ExpectCommit()

	err := CapturePayment("pay_xyz", "order_abc", signature)
	assert.NoError(t, err)
	// No inventory or booking writes: the replay must be a pure no-op.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapturePaymentRequiresPendingState(t *testing.T) {
	cfg := testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	signature := lib.PaymentSignature("order_abc", "pay_xyz", cfg.KeySecret)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings".*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(7, 1, 2, 3,
				time.Now(), time.Now().AddDate(0, 0, 1), 1,
				1000.0, "INR", string(types.BOOKING_RESERVED),
				"order_abc", nil, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(3, "someone@example.com"))
	mock.ExpectRollback()

	err := CapturePayment("pay_xyz", "order_abc", signature)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapturePaymentUnknownOrder(t *testing.T) {
	cfg := testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)

	signature := lib.PaymentSignature("order_missing", "pay_xyz", cfg.KeySecret)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings".*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectRollback()

	err := CapturePayment("pay_xyz", "order_missing", signature)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingStatus(t *testing.T) {
	d, mock := newMockDB(t)
	db.NewDB(d)

	t.Run("rejects a caller that does not own the booking", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(7, 1, 2, 99,
					time.Now(), time.Now(), 1,
					1000.0, "INR", string(types.BOOKING_RESERVED),
					nil, nil, time.Now()))

		_, err := GetBookingStatus(3, 7)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("overlays EXPIRED on a stale reservation", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(7, 1, 2, 3,
					time.Now(), time.Now(), 1,
					1000.0, "INR", string(types.BOOKING_RESERVED),
					nil, nil, time.Now().Add(-time.Hour)))

		status, err := GetBookingStatus(3, 7)
		assert.NoError(t, err)
		assert.Equal(t, types.BOOKING_EXPIRED, status)
	})

	t.Run("returns the stored status inside the hold window", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(7, 1, 2, 3,
					time.Now(), time.Now(), 1,
					1000.0, "INR", string(types.BOOKING_RESERVED),
					nil, nil, time.Now()))

		status, err := GetBookingStatus(3, 7)
		assert.NoError(t, err)
		assert.Equal(t, types.BOOKING_RESERVED, status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := GetBookingStatus(3, 404)
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func cancellableBookingRows(userID uint, day time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns).
		AddRow(7, 1, 2, userID,
			day, day, 2,
			500.50, "INR", string(types.BOOKING_CONFIRMED),
			"order_abc", "pay_xyz", time.Now().Add(-time.Hour))
}

func inventoryRows(day time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "hotel_id", "room_id", "date", "total_count", "reserved_count", "booked_count", "base_price", "closed"}).
		AddRow(11, 1, 2, day, 10, 0, 2, 500.50, false)
}

func TestCancelBookingRefundsCapturedAmount(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)
	gateway := &fakeGateway{}
	lib.NewPaymentGateway(gateway)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings".*FOR UPDATE`).
		WillReturnRows(cancellableBookingRows(3, day))
	mock.ExpectQuery(`SELECT \* FROM "inventories".*FOR UPDATE`).
		WillReturnRows(inventoryRows(day))
	mock.ExpectExec(`UPDATE "inventories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := CancelBooking(3, 7)
	assert.NoError(t, err)
	assert.Equal(t, "pay_xyz", gateway.refundedPayment)
	assert.Equal(t, int64(50050), gateway.refundedAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingSurvivesRefundFailure(t *testing.T) {
	testPaymentConfig()
	d, mock := newMockDB(t)
	db.NewDB(d)
	gateway := &fakeGateway{refundErr: errors.New("gateway down")}
	lib.NewPaymentGateway(gateway)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings".*FOR UPDATE`).
		WillReturnRows(cancellableBookingRows(3, day))
	mock.ExpectQuery(`SELECT \* FROM "inventories".*FOR UPDATE`).
		WillReturnRows(inventoryRows(day))
	mock.ExpectExec(`UPDATE "inventories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// The cancellation commits first; only the refund surfaces an error.
	err := CancelBooking(3, 7)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingRejectsNonConfirmed(t *testing.T) {
	d, mock := newMockDB(t)
	db.NewDB(d)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings".*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(7, 1, 2, 3,
				time.Now(), time.Now(), 1,
				1000.0, "INR", string(types.BOOKING_RESERVED),
				nil, nil, time.Now()))
	mock.ExpectRollback()

	err := CancelBooking(3, 7)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComputeHotelReport(t *testing.T) {
	t.Run("empty input yields a zero report", func(t *testing.T) {
		report := ComputeHotelReport(nil)
		assert.Equal(t, int64(0), report.BookingCount)
		assert.Equal(t, 0.0, report.TotalRevenue)
		assert.Equal(t, 0.0, report.AvgRevenue)
	})

	t.Run("only confirmed bookings count", func(t *testing.T) {
		bookings := []models.Booking{
			{Status: types.BOOKING_CONFIRMED, Amount: 100.10},
			{Status: types.BOOKING_CONFIRMED, Amount: 200.25},
			{Status: types.BOOKING_CANCELLED, Amount: 999},
			{Status: types.BOOKING_RESERVED, Amount: 999},
		}
		report := ComputeHotelReport(bookings)
		assert.Equal(t, int64(2), report.BookingCount)
		assert.Equal(t, 300.35, report.TotalRevenue)
		assert.Equal(t, 150.18, report.AvgRevenue)
	})
}
