package model

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

type Booking struct {
	ID        int64     `json:"id" db:"id"`
	RoomID    int64     `json:"roomId" db:"room_id"`
	UserID    int64     `json:"-" db:"user_id"`
	DateStart time.Time `json:"dateStart" db:"date_start"`
	DateEnd   time.Time `json:"dateEnd" db:"date_end"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type BookingData struct {
	RoomID    int64     `json:"roomId"`
	DateStart time.Time `json:"dateStart" validate:"required"`
	DateEnd   time.Time `json:"dateEnd" validate:"required"`
}

type CreateBookingRequest struct {
	Booking    BookingData `json:"booking" validate:"required"`
	AutoSelect bool        `json:"autoSelect"`
}

// Room mirrors the hotel service's representation. Recommend responses come
// pre-ordered: least booked first, id as the tie-break.
type Room struct {
	ID           int64 `json:"id"`
	HotelID      int64 `json:"hotelId"`
	Number       int   `json:"number"`
	Availability bool  `json:"availability"`
	TimesBooked  int64 `json:"timesBooked"`
}

type RecommendResponse struct {
	Rooms []Room `json:"roomDtos"`
}

const OpRelease = "release"

// ReconcileTask is what gets enqueued when a compensating release fails:
// enough for an out-of-band worker to retry the room mutation.
type ReconcileTask struct {
	TaskID string `json:"taskId"`
	RoomID int64  `json:"roomId"`
	Op     string `json:"op"`
}

type User struct {
	ID       int64  `json:"-" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Email    string `json:"email" db:"email"`
	Role     string `json:"role" db:"role"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}
