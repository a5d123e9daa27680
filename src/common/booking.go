package common

import (
	"errors"
	"fmt"
	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/lib"
	"hbs/src/models"
	"hbs/src/types"
	"hbs/src/utils"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingHoldWindow is how long a reservation may sit in RESERVED or
// GUESTS_ADDED before it lapses.
const BookingHoldWindow = 10 * time.Minute

// HasBookingExpired reports whether the reservation window has lapsed.
// Only RESERVED and GUESTS_ADDED bookings expire; later states are owned
// by the payment flow.
func HasBookingExpired(booking *models.Booking, at time.Time) bool {
	if booking.Status != types.BOOKING_RESERVED && booking.Status != types.BOOKING_GUESTS_ADDED {
		return false
	}
	return booking.CreatedAt.Add(BookingHoldWindow).Before(at)
}

// EffectiveStatus is the persisted status with the derived EXPIRED
// overlay applied.
func EffectiveStatus(booking *models.Booking, at time.Time) types.BookingStatus {
	if HasBookingExpired(booking, at) {
		return types.BOOKING_EXPIRED
	}
	return booking.Status
}

// InitialiseBooking locks and reserves inventory for the range and
// creates the booking in RESERVED, all in one transaction. Either the
// whole reservation commits or nothing does.
func InitialiseBooking(userID, hotelID, roomID uint, checkIn, checkOut time.Time, roomsCount uint) (*models.Booking, error) {
	log.Printf("Initialising booking for hotel %d, room %d, dates %s - %s\n",
		hotelID, roomID, checkIn.Format(config.DATE_FORMAT), checkOut.Format(config.DATE_FORMAT))
	db := db.GetDb()
	var booking *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.
			Where(&models.Hotel{ID: hotelID}).
			First(&hotel).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if !hotel.Active {
			return ErrResourceNotFound
		}
		var room models.Room
		if err := tx.
			Where(&models.Room{ID: roomID}).
			First(&room).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if room.HotelID != hotel.ID {
			return ErrResourceNotFound
		}

		days, err := FindAndLockAvailable(tx, room.ID, checkIn, checkOut, roomsCount)
		if err != nil {
			return err
		}
		if err := ReserveInventory(tx, room.ID, checkIn, checkOut, roomsCount); err != nil {
			return err
		}

		priceForOneRoom := CalculateTotalPrice(DefaultPricing(), days)
		amount := utils.RoundMoney(priceForOneRoom * float64(roomsCount))

		b := models.Booking{
			HotelID:      hotel.ID,
			RoomID:       room.ID,
			UserID:       userID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			RoomsCount:   roomsCount,
			Amount:       amount,
			Currency:     config.GetPaymentConfig().Currency,
			Status:       types.BOOKING_RESERVED,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		booking = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// AddGuests attaches the user's guests to a RESERVED booking and moves it
// to GUESTS_ADDED.
func AddGuests(userID, bookingID uint, guestIDs []uint) (*models.Booking, error) {
	db := db.GetDb()
	var result *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Where(&models.Booking{ID: bookingID}).
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if booking.UserID != userID {
			return ErrUnauthorized
		}
		if HasBookingExpired(&booking, time.Now()) {
			return ErrBookingExpired
		}
		if booking.Status != types.BOOKING_RESERVED {
			return ErrInvalidStateTransition
		}

		var guests []*models.Guest
		if err := tx.
			Where("user_id = ?", userID).
			Where("id IN ?", guestIDs).
			Find(&guests).
			Error; err != nil {
			return err
		}
		if len(guests) != len(guestIDs) {
			return ErrResourceNotFound
		}
		if err := tx.Model(&booking).Association("Guests").Append(guests); err != nil {
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: booking.ID}).
			Update("status", types.BOOKING_GUESTS_ADDED).
			Error; err != nil {
			return err
		}
		booking.Status = types.BOOKING_GUESTS_ADDED
		booking.Guests = guests
		result = &booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// InitiatePayment creates a remote payment order for the booking, stores
// the order reference, moves the booking to PAYMENTS_PENDING and returns
// the client-facing payment URL.
func InitiatePayment(userID, bookingID uint) (string, error) {
	cfg := config.GetPaymentConfig()
	if !cfg.Enabled() {
		return "", ErrPaymentNotConfigured
	}
	db := db.GetDb()
	var url string
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Where(&models.Booking{ID: bookingID}).
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if booking.UserID != userID {
			return ErrUnauthorized
		}
		if HasBookingExpired(&booking, time.Now()) {
			return ErrBookingExpired
		}
		switch booking.Status {
		case types.BOOKING_RESERVED, types.BOOKING_GUESTS_ADDED:
		default:
			return ErrInvalidStateTransition
		}

		amountMinor := utils.ToMinorUnits(booking.Amount)

		if cfg.Provider == "stripe" {
			successURL := cfg.FrontendURL + "/payments/success"
			sessionID, checkoutURL, err := lib.CreateBookingCheckout(booking.ID, amountMinor, strings.ToLower(booking.Currency), successURL)
			if err != nil {
				log.Printf("Could not create checkout session for booking %d: %s\n", booking.ID, err.Error())
				return ErrGatewayUnavailable
			}
			if err := tx.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: booking.ID}).
				Updates(map[string]interface{}{
					"status":             types.BOOKING_PAYMENTS_PENDING,
					"payment_session_id": sessionID,
				}).
				Error; err != nil {
				return err
			}
			url = checkoutURL
			return nil
		}

		// A fresh receipt per attempt so a retried initiation creates a
		// new gateway order instead of colliding with a stale one.
		receipt := fmt.Sprintf("booking_%d_%s", booking.ID, strings.Split(uuid.NewString(), "-")[0])
		orderID, err := lib.GetPaymentGateway().CreateOrder(amountMinor, booking.Currency, receipt)
		if err != nil {
			log.Printf("Could not create payment order for booking %d: %s\n", booking.ID, err.Error())
			return ErrGatewayUnavailable
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: booking.ID}).
			Updates(map[string]interface{}{
				"status":           types.BOOKING_PAYMENTS_PENDING,
				"payment_order_id": orderID,
			}).
			Error; err != nil {
			return err
		}
		url = utils.BuildPaymentURL(cfg.FrontendURL, booking.ID, orderID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

// CapturePayment handles a verified gateway capture callback. The booking
// is looked up by order id since the webhook carries no user session. The
// signature is checked before any field is trusted; failure mutates
// nothing. Replays of an already confirmed booking are no-ops so the
// ledger is never double-confirmed.
func CapturePayment(paymentID, orderID, signature string) error {
	cfg := config.GetPaymentConfig()
	if !cfg.Enabled() {
		return ErrPaymentNotConfigured
	}
	if !lib.VerifyPaymentSignature(orderID, paymentID, signature, cfg.KeySecret) {
		log.Printf("Rejected payment capture for order %s: signature verification failed\n", orderID)
		return ErrSignatureInvalid
	}

	db := db.GetDb()
	var confirmed *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		// Row lock serializes concurrent deliveries of the same capture
		// so the CONFIRMED guard below cannot pass twice.
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_order_id = ?", orderID).
			Preload("User").
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if booking.Status == types.BOOKING_CONFIRMED {
			// Duplicate webhook delivery; counts were already moved.
			return nil
		}
		if booking.Status != types.BOOKING_PAYMENTS_PENDING {
			return ErrInvalidStateTransition
		}

		if _, err := FindAndLockReserved(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate); err != nil {
			return err
		}
		if err := ConfirmInventory(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, booking.RoomsCount); err != nil {
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: booking.ID}).
			Updates(map[string]interface{}{
				"status":     types.BOOKING_CONFIRMED,
				"payment_id": paymentID,
			}).
			Error; err != nil {
			return err
		}
		booking.Status = types.BOOKING_CONFIRMED
		confirmed = &booking
		return nil
	})
	if err != nil {
		return err
	}
	if confirmed != nil {
		log.Printf("Successfully confirmed booking %d for order %s\n", confirmed.ID, orderID)
		go sendBookingConfirmedMail(confirmed)
	}
	return nil
}

// CaptureCheckoutSession confirms a booking paid through the Stripe
// checkout provider. Signature verification already happened upstream via
// the Stripe webhook construction.
func CaptureCheckoutSession(sessionID, paymentRef string) error {
	db := db.GetDb()
	var confirmed *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_session_id = ?", sessionID).
			Preload("User").
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if booking.Status == types.BOOKING_CONFIRMED {
			return nil
		}
		if booking.Status != types.BOOKING_PAYMENTS_PENDING {
			return ErrInvalidStateTransition
		}
		if _, err := FindAndLockReserved(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate); err != nil {
			return err
		}
		if err := ConfirmInventory(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, booking.RoomsCount); err != nil {
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: booking.ID}).
			Updates(map[string]interface{}{
				"status":     types.BOOKING_CONFIRMED,
				"payment_id": paymentRef,
			}).
			Error; err != nil {
			return err
		}
		booking.Status = types.BOOKING_CONFIRMED
		confirmed = &booking
		return nil
	})
	if err != nil {
		return err
	}
	if confirmed != nil {
		go sendBookingConfirmedMail(confirmed)
	}
	return nil
}

// CancelBooking releases booked inventory and flips the booking to
// CANCELLED in one transaction, then refunds the full captured amount.
// A refund failure does not roll back the cancellation; it surfaces as a
// retryable gateway error and operations retry the refund with the stored
// payment id.
func CancelBooking(userID, bookingID uint) error {
	db := db.GetDb()
	var cancelled *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Booking{ID: bookingID}).
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if booking.UserID != userID {
			return ErrUnauthorized
		}
		if booking.Status != types.BOOKING_CONFIRMED {
			return ErrInvalidStateTransition
		}

		if _, err := FindAndLockReserved(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate); err != nil {
			return err
		}
		if err := ReleaseBookedInventory(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, booking.RoomsCount); err != nil {
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: booking.ID}).
			Update("status", types.BOOKING_CANCELLED).
			Error; err != nil {
			return err
		}
		cancelled = &booking
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled.PaymentId == nil {
		log.Printf("No payment recorded for booking %d, skipping refund\n", cancelled.ID)
		return nil
	}
	amountMinor := utils.ToMinorUnits(cancelled.Amount)
	if err := lib.GetPaymentGateway().Refund(*cancelled.PaymentId, amountMinor); err != nil {
		log.Printf("Refund failed for payment %s on booking %d, retry required: %s\n",
			*cancelled.PaymentId, cancelled.ID, err.Error())
		return ErrGatewayUnavailable
	}
	log.Printf("Refund successful for payment %s\n", *cancelled.PaymentId)
	return nil
}

// GetBookingStatus returns the effective status, with the expiry overlay
// applied for stale reservations.
func GetBookingStatus(userID, bookingID uint) (types.BookingStatus, error) {
	db := db.GetDb()
	var booking models.Booking
	if err := db.
		Where(&models.Booking{ID: bookingID}).
		First(&booking).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrResourceNotFound
		}
		return "", err
	}
	if booking.UserID != userID {
		return "", ErrUnauthorized
	}
	return EffectiveStatus(&booking, time.Now()), nil
}

// ListUserBookings returns the caller's bookings, newest first.
func ListUserBookings(userID uint) ([]models.Booking, error) {
	db := db.GetDb()
	var bookings []models.Booking
	err := db.
		Where(&models.Booking{UserID: userID}).
		Preload("Hotel").
		Preload("Room").
		Order("created_at desc").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListHotelBookings returns every booking of a hotel; only the hotel
// owner may call it.
func ListHotelBookings(userID, hotelID uint) ([]models.Booking, error) {
	db := db.GetDb()
	var hotel models.Hotel
	if err := db.
		Where(&models.Hotel{ID: hotelID}).
		First(&hotel).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if hotel.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	var bookings []models.Booking
	err := db.
		Where(&models.Booking{HotelID: hotelID}).
		Preload("Room").
		Order("created_at desc").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ComputeHotelReport aggregates confirmed bookings: count, total revenue
// and average revenue (zero when there is nothing to average).
func ComputeHotelReport(bookings []models.Booking) types.HotelReport {
	var report types.HotelReport
	for _, b := range bookings {
		if b.Status != types.BOOKING_CONFIRMED {
			continue
		}
		report.BookingCount++
		report.TotalRevenue += b.Amount
	}
	report.TotalRevenue = utils.RoundMoney(report.TotalRevenue)
	if report.BookingCount > 0 {
		report.AvgRevenue = utils.RoundMoney(report.TotalRevenue / float64(report.BookingCount))
	}
	return report
}

// HotelReport aggregates revenue over bookings created inside the window;
// only the hotel owner may call it.
func HotelReport(userID, hotelID uint, start, end time.Time) (*types.HotelReport, error) {
	db := db.GetDb()
	var hotel models.Hotel
	if err := db.
		Where(&models.Hotel{ID: hotelID}).
		First(&hotel).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if hotel.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	endOfDay := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	var bookings []models.Booking
	err := db.
		Where(&models.Booking{HotelID: hotelID}).
		Where("created_at BETWEEN ? AND ?", start, endOfDay).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	report := ComputeHotelReport(bookings)
	return &report, nil
}

// ExpireStaleBookings releases the reserved inventory of bookings whose
// hold window lapsed and marks them EXPIRED. Runs on a schedule; the
// per-request expiry guards stay correct without it.
func ExpireStaleBookings() {
	db := db.GetDb()
	cutoff := time.Now().Add(-BookingHoldWindow)
	var stale []models.Booking
	err := db.
		Where("status IN ?", []types.BookingStatus{types.BOOKING_RESERVED, types.BOOKING_GUESTS_ADDED}).
		Where("created_at < ?", cutoff).
		Limit(100).
		Find(&stale).
		Error
	if err != nil {
		log.Printf("Error retrieving stale bookings: %s\n", err.Error())
		return
	}
	for _, b := range stale {
		bookingID := b.ID
		err := db.Transaction(func(tx *gorm.DB) error {
			var booking models.Booking
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", bookingID).
				Where("status IN ?", []types.BookingStatus{types.BOOKING_RESERVED, types.BOOKING_GUESTS_ADDED}).
				First(&booking).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Advanced or already reaped since the scan.
					return nil
				}
				return err
			}
			if _, err := FindAndLockReserved(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate); err != nil {
				return err
			}
			if err := ReleaseReservedInventory(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, booking.RoomsCount); err != nil {
				return err
			}
			return tx.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: booking.ID}).
				Update("status", types.BOOKING_EXPIRED).
				Error
		})
		if err != nil {
			log.Printf("Error expiring booking %d: %s\n", bookingID, err.Error())
		}
	}
}

func sendBookingConfirmedMail(booking *models.Booking) {
	if booking.User == nil || booking.User.Email == "" {
		return
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		return
	}
	body := fmt.Sprintf(
		"Your booking #%d from %s to %s is confirmed. Amount paid: %.2f %s.",
		booking.ID,
		booking.CheckInDate.Format(config.DATE_FORMAT),
		booking.CheckOutDate.Format(config.DATE_FORMAT),
		booking.Amount,
		booking.Currency,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: "Bookings",
		To:       []string{booking.User.Email},
		Subject:  fmt.Sprintf("Booking #%d confirmed", booking.ID),
		Body:     body,
	})
	if err != nil {
		log.Printf("Could not send confirmation email for booking %d: %s\n", booking.ID, err.Error())
	}
}
