package common

import (
	"hbs/src/models"
	"hbs/src/utils"
	"time"
)

// PricingStrategy computes the per-day price of one inventory row.
// Strategies are pure; they never touch the ledger.
type PricingStrategy interface {
	CalculatePrice(inv models.Inventory) float64
}

type BasePricing struct{}

func (BasePricing) CalculatePrice(inv models.Inventory) float64 {
	return inv.BasePrice
}

// HolidayCalendar reports whether a date is a holiday. The default
// implementation checks weekends; deployments plug in a real calendar.
type HolidayCalendar func(date time.Time) bool

func WeekendCalendar(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// HolidayPricing wraps another strategy and applies a surcharge factor on
// holidays.
type HolidayPricing struct {
	Wrapped  PricingStrategy
	Calendar HolidayCalendar
	Factor   float64
}

func NewHolidayPricing(wrapped PricingStrategy, calendar HolidayCalendar) HolidayPricing {
	return HolidayPricing{Wrapped: wrapped, Calendar: calendar, Factor: 1.25}
}

func (s HolidayPricing) CalculatePrice(inv models.Inventory) float64 {
	price := s.Wrapped.CalculatePrice(inv)
	if s.Calendar != nil && s.Calendar(inv.Date) {
		price *= s.Factor
	}
	return price
}

// OccupancyPricing wraps another strategy and applies a surge factor once
// the day is mostly taken.
type OccupancyPricing struct {
	Wrapped   PricingStrategy
	Threshold float64
	Factor    float64
}

func NewOccupancyPricing(wrapped PricingStrategy) OccupancyPricing {
	return OccupancyPricing{Wrapped: wrapped, Threshold: 0.8, Factor: 1.2}
}

func (s OccupancyPricing) CalculatePrice(inv models.Inventory) float64 {
	price := s.Wrapped.CalculatePrice(inv)
	if inv.TotalCount == 0 {
		return price
	}
	occupancy := float64(inv.ReservedCount+inv.BookedCount) / float64(inv.TotalCount)
	if occupancy >= s.Threshold {
		price *= s.Factor
	}
	return price
}

// DefaultPricing is the chain used by the booking flow: base price with
// holiday and occupancy surcharges stacked on top.
func DefaultPricing() PricingStrategy {
	return NewOccupancyPricing(NewHolidayPricing(BasePricing{}, WeekendCalendar))
}

// CalculateTotalPrice sums the per-day price of one room over the stay.
func CalculateTotalPrice(strategy PricingStrategy, days []models.Inventory) float64 {
	var total float64
	for _, day := range days {
		total += strategy.CalculatePrice(day)
	}
	return utils.RoundMoney(total)
}
