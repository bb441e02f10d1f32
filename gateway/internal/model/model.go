package model

import (
	"time"
)

type Booking struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"roomId"`
	DateStart time.Time `json:"dateStart"`
	DateEnd   time.Time `json:"dateEnd"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Room struct {
	ID           int64 `json:"id"`
	HotelID      int64 `json:"hotelId"`
	Number       int   `json:"number"`
	Availability bool  `json:"availability"`
	TimesBooked  int64 `json:"timesBooked"`
}

// BookingWithRoom is the gateway's enriched listing item: the booking joined
// with the room it refers to, fetched from the hotel service.
type BookingWithRoom struct {
	Booking `json:",inline"`
	Room    *Room `json:"room,omitempty"`
}
