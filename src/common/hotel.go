package common

import (
	"encoding/json"
	"fmt"
	"hbs/src/db"
	"hbs/src/lib"
	"hbs/src/models"
	"hbs/src/types"
	"hbs/src/utils"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const searchCacheTTL = 5 * time.Minute

// SearchHotels lists active hotels in a city that can cover the whole
// date range with at least roomsCount free rooms per day, along with the
// cheapest day price. Read-only, lock-free; results come from a short
// lived redis cache when available.
func SearchHotels(city string, start, end time.Time, roomsCount uint) ([]types.HotelPriceResult, error) {
	if roomsCount == 0 {
		roomsCount = 1
	}
	cacheKey := fmt.Sprintf("hotelsearch:%s:%s:%s:%d",
		city, start.Format("2006-01-02"), end.Format("2006-01-02"), roomsCount)
	if cached := lib.GetCachedSearchResult(cacheKey); cached != nil {
		var results []types.HotelPriceResult
		if err := json.Unmarshal(cached, &results); err == nil {
			return results, nil
		}
	}

	daysCount := utils.DaysBetween(start, end)
	db := db.GetDb()
	var results []types.HotelPriceResult
	err := db.
		Model(&models.Inventory{}).
		Select("inventories.hotel_id as hotel_id, hotels.name as name, hotels.city as city, MIN(inventories.base_price) as min_price").
		Joins("JOIN hotels ON hotels.id = inventories.hotel_id").
		Where("hotels.city = ?", city).
		Where("hotels.active = ?", true).
		Where("inventories.date BETWEEN ? AND ?", start, end).
		Where("inventories.closed = ?", false).
		Where("inventories.total_count - inventories.reserved_count - inventories.booked_count >= ?", roomsCount).
		Group("inventories.hotel_id, hotels.name, hotels.city").
		Having("COUNT(DISTINCT inventories.date) = ?", daysCount).
		Order("min_price asc").
		Scan(&results).
		Error
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(results); err == nil {
		lib.CacheSearchResult(cacheKey, payload, searchCacheTTL)
	}
	go refreshMinPrices(start, results)

	return results, nil
}

// refreshMinPrices materializes the cheapest observed price per hotel for
// the check-in day. Best effort; the search answer never depends on it.
func refreshMinPrices(date time.Time, results []types.HotelPriceResult) {
	if len(results) == 0 {
		return
	}
	db := db.GetDb()
	rows := make([]models.HotelMinPrice, 0, len(results))
	for _, r := range results {
		rows = append(rows, models.HotelMinPrice{
			HotelID: r.HotelID,
			Date:    date,
			Price:   r.MinPrice,
		})
	}
	err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"price"}),
		}).
		Create(&rows).
		Error
	if err != nil {
		log.Printf("Could not refresh hotel min prices: %s\n", err.Error())
	}
}

// GetHotelInfo returns a hotel with its rooms. Inactive hotels are only
// visible to their owner through the admin routes.
func GetHotelInfo(hotelID uint) (*models.Hotel, error) {
	db := db.GetDb()
	var hotel models.Hotel
	err := db.
		Where(&models.Hotel{ID: hotelID}).
		Preload("Rooms").
		First(&hotel).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return &hotel, nil
}
