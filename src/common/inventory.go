package common

import (
	"hbs/src/models"
	"hbs/src/utils"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Inventory ledger. Every mutation below runs against a caller-supplied
// transaction and expects the affected rows to be locked FOR UPDATE first
// in that same transaction. Rows are always locked in ascending date order
// so concurrent multi-day reservations cannot deadlock each other.

// FindAndLockAvailable locks every inventory row of the room in the
// inclusive date range that still has capacity for roomsCount more rooms.
// Returns ErrInventoryUnavailable when any day of the range is missing,
// closed or short on capacity; no partial lock survives the rollback.
func FindAndLockAvailable(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, roomsCount uint) ([]models.Inventory, error) {
	var days []models.Inventory
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_id = ?", roomID).
		Where("date BETWEEN ? AND ?", checkIn, checkOut).
		Where("closed = ?", false).
		Where("total_count - reserved_count - booked_count >= ?", roomsCount).
		Order("date asc").
		Find(&days).
		Error
	if err != nil {
		return nil, err
	}
	if len(days) != utils.DaysBetween(checkIn, checkOut) {
		return nil, ErrInventoryUnavailable
	}
	return days, nil
}

// FindAndLockReserved re-locks the booked range of an existing booking
// before the reserved->booked or booked->released counter transitions.
func FindAndLockReserved(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) ([]models.Inventory, error) {
	var days []models.Inventory
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_id = ?", roomID).
		Where("date BETWEEN ? AND ?", checkIn, checkOut).
		Order("date asc").
		Find(&days).
		Error
	if err != nil {
		return nil, err
	}
	if len(days) != utils.DaysBetween(checkIn, checkOut) {
		return nil, ErrInventoryUnavailable
	}
	return days, nil
}

// ReserveInventory places a tentative hold: reserved_count += roomsCount
// for every day of the range. Must follow a successful FindAndLockAvailable
// in the same transaction.
func ReserveInventory(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, roomsCount uint) error {
	return tx.
		Model(&models.Inventory{}).
		Where("room_id = ?", roomID).
		Where("date BETWEEN ? AND ?", checkIn, checkOut).
		UpdateColumn("reserved_count", gorm.Expr("reserved_count + ?", roomsCount)).
		Error
}

// ConfirmInventory moves a hold to committed capacity on payment capture:
// reserved_count -= roomsCount, booked_count += roomsCount per day.
func ConfirmInventory(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, roomsCount uint) error {
	return tx.
		Model(&models.Inventory{}).
		Where("room_id = ?", roomID).
		Where("date BETWEEN ? AND ?", checkIn, checkOut).
		UpdateColumns(map[string]interface{}{
			"reserved_count": gorm.Expr("reserved_count - ?", roomsCount),
			"booked_count":   gorm.Expr("booked_count + ?", roomsCount),
		}).
		Error
}

// ReleaseBookedInventory frees committed capacity when a confirmed
// booking is cancelled.
func ReleaseBookedInventory(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, roomsCount uint) error {
	return tx.
		Model(&models.Inventory{}).
		Where("room_id = ?", roomID).
		Where("date BETWEEN ? AND ?", checkIn, checkOut).
		UpdateColumn("booked_count", gorm.Expr("booked_count - ?", roomsCount)).
		Error
}

// ReleaseReservedInventory frees a tentative hold that lapsed without
// payment. Used by the expiry reaper.
func ReleaseReservedInventory(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, roomsCount uint) error {
	return tx.
		Model(&models.Inventory{}).
		Where("room_id = ?", roomID).
		Where("date BETWEEN ? AND ?", checkIn, checkOut).
		UpdateColumn("reserved_count", gorm.Expr("reserved_count - ?", roomsCount)).
		Error
}

// InitializeRoomInventory seeds one ledger row per day for the next year
// for a freshly activated room.
func InitializeRoomInventory(tx *gorm.DB, room *models.Room) error {
	today := time.Now()
	dates := utils.DateRange(today, today.AddDate(1, 0, -1))
	rows := make([]models.Inventory, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, models.Inventory{
			HotelID:    room.HotelID,
			RoomID:     room.ID,
			Date:       date,
			TotalCount: room.TotalCount,
			BasePrice:  room.BasePrice,
		})
	}
	err := tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&rows, 100).
		Error
	if err != nil {
		log.Printf("Could not seed inventory for room %d: %s\n", room.ID, err.Error())
		return err
	}
	return nil
}

// DeleteRoomInventory removes the ledger rows of a room being retired.
func DeleteRoomInventory(tx *gorm.DB, roomID uint) error {
	return tx.
		Unscoped().
		Where("room_id = ?", roomID).
		Delete(&models.Inventory{}).
		Error
}
