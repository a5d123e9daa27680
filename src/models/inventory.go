package models

import (
	"hbs/src/types"
	"time"
)

// Inventory is one capacity row per (room, date). ReservedCount holds
// tentative capacity pending payment, BookedCount capacity committed after
// capture. reserved_count + booked_count never exceeds total_count; the
// row is only ever mutated under a FOR UPDATE lock.
type Inventory struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	HotelID       uint      `gorm:"index" json:"hotel_id,omitempty"`
	RoomID        uint      `gorm:"index:idx_room_date,unique" json:"room_id,omitempty"`
	Date          time.Time `gorm:"type:date;index:idx_room_date,unique" json:"date"`
	TotalCount    uint      `json:"total_count"`
	ReservedCount uint      `gorm:"default:0" json:"reserved_count"`
	BookedCount   uint      `gorm:"default:0" json:"booked_count"`
	BasePrice     float64   `json:"base_price"`
	Closed        bool      `gorm:"default:false" json:"closed,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"-"`
	Room  *Room  `gorm:"foreignKey:room_id" json:"-"`

	types.Timestamps
}

// HotelMinPrice materializes the cheapest available day price per hotel,
// refreshed opportunistically by the search path and cached in redis.
type HotelMinPrice struct {
	ID      uint      `gorm:"primarykey" json:"id"`
	HotelID uint      `gorm:"index:idx_hotel_date,unique" json:"hotel_id,omitempty"`
	Date    time.Time `gorm:"type:date;index:idx_hotel_date,unique" json:"date"`
	Price   float64   `json:"price"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"-"`

	types.Timestamps
}
