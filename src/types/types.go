package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type BookingStatus string

const (
	BOOKING_RESERVED         BookingStatus = "RESERVED"
	BOOKING_GUESTS_ADDED     BookingStatus = "GUESTS_ADDED"
	BOOKING_PAYMENTS_PENDING BookingStatus = "PAYMENTS_PENDING"
	BOOKING_CONFIRMED        BookingStatus = "CONFIRMED"
	BOOKING_CANCELLED        BookingStatus = "CANCELLED"
	BOOKING_EXPIRED          BookingStatus = "EXPIRED"
)

type Gender string

const (
	GENDER_MALE        Gender = "MALE"
	GENDER_FEMALE      Gender = "FEMALE"
	GENDER_UNSPECIFIED Gender = "OTHER"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RoomRequestParams struct {
	ID     uint `uri:"id" binding:"required"`
	RoomID uint `uri:"roomId" binding:"required"`
}

type InitBookingRequestBody struct {
	HotelID      uint   `json:"hotel_id" binding:"required"`
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required,bookingdate"`
	CheckOutDate string `json:"check_out_date" binding:"required,bookingdate,gtedate=CheckInDate"`
	RoomsCount   uint   `json:"rooms_count" binding:"required,min=1"`
}

type AddGuestsRequestBody struct {
	GuestIDs []uint `json:"guest_ids" binding:"required,min=1"`
}

type CreateHotelRequestBody struct {
	Name         string `json:"name" binding:"required"`
	City         string `json:"city" binding:"required"`
	ContactEmail string `json:"email,omitempty"`
	ContactPhone string `json:"phone,omitempty"`
	Amenities    string `json:"amenities,omitempty"`
	Photos       string `json:"photos,omitempty"`
}

type UpdateHotelRequestBody struct {
	Name         string `json:"name,omitempty"`
	City         string `json:"city,omitempty"`
	ContactEmail string `json:"email,omitempty"`
	ContactPhone string `json:"phone,omitempty"`
	Amenities    string `json:"amenities,omitempty"`
	Photos       string `json:"photos,omitempty"`
}

type CreateRoomRequestBody struct {
	Type      string  `json:"type" binding:"required"`
	BasePrice float64 `json:"base_price" binding:"required,gt=0"`
	TotalCount uint   `json:"total_count" binding:"required,min=1"`
	Capacity  uint    `json:"capacity,omitempty"`
	Photos    string  `json:"photos,omitempty"`
	Amenities string  `json:"amenities,omitempty"`
}

type CreateGuestRequestBody struct {
	Name   string `json:"name" binding:"required"`
	Gender Gender `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Age    uint   `json:"age,omitempty" binding:"omitempty,gte=0,lte=120"`
}

type UpdateProfileRequestBody struct {
	Name        string `json:"name,omitempty"`
	Gender      Gender `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth string `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type PaymentVerifyRequestBody struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type HotelSearchRequestBody struct {
	City       string `json:"city" binding:"required"`
	StartDate  string `json:"start_date" binding:"required,bookingdate"`
	EndDate    string `json:"end_date" binding:"required,bookingdate,gtedate=StartDate"`
	RoomsCount uint   `json:"rooms_count,omitempty"`
}

type HotelPriceResult struct {
	HotelID  uint    `json:"hotel_id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	MinPrice float64 `json:"min_price"`
}

type HotelReport struct {
	BookingCount int64   `json:"booking_count"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRevenue   float64 `json:"avg_revenue"`
}

type HotelReportRequestQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// Range resolves the report window. Missing bounds default to the last
// month ending today.
func (q HotelReportRequestQuery) Range() (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(0, -1, 0)
	if q.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return start, end, err
		}
		end = parsed
	}
	if q.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return start, end, err
		}
		start = parsed
	}
	return start, end, nil
}
