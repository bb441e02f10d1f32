package model

type Hotel struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name" validate:"required"`
	Address string `json:"address" db:"address" validate:"required"`
}

type Room struct {
	ID           int64 `json:"id" db:"id"`
	HotelID      int64 `json:"hotelId" db:"hotel_id"`
	Number       int   `json:"number" db:"number"`
	Availability bool  `json:"availability" db:"available"`
	TimesBooked  int64 `json:"timesBooked" db:"times_booked"`
}

type CreateRoomRequest struct {
	HotelID int64 `json:"hotelId" validate:"required"`
	Number  int   `json:"number" validate:"required"`
}

type RecommendResponse struct {
	Rooms []Room `json:"roomDtos"`
}

// ReconcileTask mirrors the booking service's queue payload.
type ReconcileTask struct {
	TaskID string `json:"taskId"`
	RoomID int64  `json:"roomId"`
	Op     string `json:"op"`
}

const OpRelease = "release"
