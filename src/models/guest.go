package models

import "hbs/src/types"

type Guest struct {
	ID     uint         `gorm:"primarykey" json:"id"`
	UserID uint         `gorm:"index" json:"user_id,omitempty"`
	Name   string       `json:"name,omitempty"`
	Gender types.Gender `json:"gender,omitempty"`
	Age    uint         `json:"age,omitempty"`

	User     *User      `gorm:"foreignKey:user_id" json:"-"`
	Bookings []*Booking `gorm:"many2many:booking_guests;" json:"bookings,omitempty"`

	types.Timestamps
}
