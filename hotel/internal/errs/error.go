package errs

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrRoomExists  = errors.New("room number already exists")
	ErrHotelExists = errors.New("hotel already exists")
)
