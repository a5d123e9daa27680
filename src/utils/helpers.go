package utils

import (
	"fmt"
	"math"
	"time"
)

// DaysBetween returns the number of calendar days in the inclusive
// [checkIn, checkOut] range. Zero when checkOut precedes checkIn.
func DaysBetween(checkIn, checkOut time.Time) int {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	if out.Before(in) {
		return 0
	}
	return int(out.Sub(in).Hours()/24) + 1
}

// DateRange expands the inclusive [checkIn, checkOut] range into one
// entry per day, ascending.
func DateRange(checkIn, checkOut time.Time) []time.Time {
	n := DaysBetween(checkIn, checkOut)
	dates := make([]time.Time, 0, n)
	d := truncateToDay(checkIn)
	for i := 0; i < n; i++ {
		dates = append(dates, d)
		d = d.AddDate(0, 0, 1)
	}
	return dates
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ToMinorUnits converts an amount to the gateway's minor currency unit
// (paise for INR) using integer truncation.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Trunc(amount * 100))
}

// RoundMoney rounds to 2 decimals, half away from zero.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildPaymentURL returns the client-facing payment status URL. Falls
// back to the relative path when no frontend base URL is configured.
func BuildPaymentURL(frontendURL string, bookingID uint, orderID string) string {
	relative := fmt.Sprintf("/payments/%d/status?orderId=%s", bookingID, orderID)
	if frontendURL == "" {
		return relative
	}
	return frontendURL + relative
}
