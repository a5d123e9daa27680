package models

import (
	"hbs/src/types"
	"time"
)

type Booking struct {
	ID           uint                `gorm:"primarykey" json:"id"`
	HotelID      uint                `gorm:"index" json:"hotel_id,omitempty"`
	RoomID       uint                `json:"room_id,omitempty"`
	UserID       uint                `gorm:"index" json:"user_id,omitempty"`
	CheckInDate  time.Time           `gorm:"type:date" json:"check_in_date"`
	CheckOutDate time.Time           `gorm:"type:date" json:"check_out_date"`
	RoomsCount   uint                `json:"rooms_count,omitempty"`
	Amount       float64             `json:"amount"`
	Currency     string              `gorm:"default:'INR'" json:"currency,omitempty"`
	Status       types.BookingStatus `gorm:"default:'RESERVED'" json:"status,omitempty"`

	// Gateway references. PaymentOrderId is the Razorpay order id the
	// webhook correlates on; PaymentSessionId is only set when the Stripe
	// checkout provider is selected.
	PaymentOrderId   *string `gorm:"index" json:"payment_order_id,omitempty"`
	PaymentSessionId *string `json:"payment_session_id,omitempty"`
	PaymentId        *string `json:"payment_id,omitempty"`

	Hotel  *Hotel   `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`
	Room   *Room    `gorm:"foreignKey:room_id" json:"room,omitempty"`
	User   *User    `gorm:"foreignKey:user_id" json:"-"`
	Guests []*Guest `gorm:"many2many:booking_guests;" json:"guests,omitempty"`

	types.Timestamps
}
