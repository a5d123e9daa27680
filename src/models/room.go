package models

import "hbs/src/types"

type Room struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	HotelID    uint    `gorm:"index" json:"hotel_id,omitempty"`
	Type       string  `json:"type,omitempty"`
	BasePrice  float64 `json:"base_price"`
	TotalCount uint    `json:"total_count"`
	Capacity   uint    `json:"capacity,omitempty"`
	Photos     string  `json:"photos,omitempty"`
	Amenities  string  `json:"amenities,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`

	types.Timestamps
}
