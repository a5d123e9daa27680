package models

import "hbs/src/types"

type Hotel struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `json:"name,omitempty"`
	Slug         string `gorm:"index" json:"slug,omitempty"`
	City         string `gorm:"index" json:"city,omitempty"`
	ContactEmail string `json:"email,omitempty"`
	ContactPhone string `json:"phone,omitempty"`
	Amenities    string `json:"amenities,omitempty"`
	Photos       string `json:"photos,omitempty"`
	Active       bool   `gorm:"default:false" json:"active"`
	OwnerID      uint   `json:"owner_id,omitempty"`

	Owner *User  `gorm:"foreignKey:owner_id" json:"-"`
	Rooms []Room `gorm:"foreignKey:hotel_id" json:"rooms,omitempty"`

	types.Timestamps
}
