package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("booking not found")
	ErrOverlap            = errors.New("requested time overlaps an existing booking")
	ErrNoAvailableRoom    = errors.New("no available rooms")
	ErrInvalidInterval    = errors.New("dateStart must be before dateEnd")
	ErrRoomRequired       = errors.New("roomId is required")
	ErrUserExists         = errors.New("username is already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
