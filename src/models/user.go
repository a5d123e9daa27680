package models

import (
	"hbs/src/types"
	"time"
)

type User struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Name        string       `json:"name,omitempty"`
	Email       string       `gorm:"uniqueIndex" json:"email,omitempty"`
	Role        string       `gorm:"default:'guest'" json:"role,omitempty"`
	Gender      types.Gender `json:"gender,omitempty"`
	DateOfBirth *time.Time   `gorm:"type:date" json:"date_of_birth,omitempty"`

	Hotels   []Hotel   `gorm:"foreignKey:owner_id" json:"hotels,omitempty"`
	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`
	Guests   []Guest   `gorm:"foreignKey:user_id" json:"guests,omitempty"`

	types.Timestamps
}
