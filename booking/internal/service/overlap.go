package service

import (
	"time"

	"github.com/nborodulin471/booking-system/booking/internal/model"
)

// HasOverlap reports whether the half-open interval [newStart, newEnd)
// conflicts with any non-cancelled booking in the candidate set. Touching
// endpoints do not count as overlap. Callers supply candidates already
// filtered by room.
func HasOverlap(existing []model.Booking, newStart, newEnd time.Time) bool {
	for _, b := range existing {
		if b.Status == model.StatusCancelled {
			continue
		}
		if b.DateStart.Before(newEnd) && b.DateEnd.After(newStart) {
			return true
		}
	}
	return false
}

// pickRoom consumes the recommend order (least booked first, id tie-break)
// and returns the first available room, or 0 if there is none.
func pickRoom(rooms []model.Room) int64 {
	for _, r := range rooms {
		if r.Availability {
			return r.ID
		}
	}
	return 0
}
