package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nborodulin471/booking-system/booking/internal/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestHasOverlap(t *testing.T) {
	t.Parallel()

	existing := []model.Booking{
		{ID: 1, RoomID: 7, DateStart: day(10), DateEnd: day(15), Status: model.StatusConfirmed},
		{ID: 2, RoomID: 7, DateStart: day(20), DateEnd: day(25), Status: model.StatusPending},
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		existing []model.Booking
		want     bool
	}{
		{"inside existing", day(11), day(14), existing, true},
		{"covers existing", day(9), day(16), existing, true},
		{"partial left", day(8), day(11), existing, true},
		{"partial right", day(14), day(17), existing, true},
		{"pending counts as busy", day(21), day(22), existing, true},
		{"before all", day(1), day(5), existing, false},
		{"between", day(16), day(19), existing, false},
		{"touching end is free", day(15), day(20), existing, false},
		{"touching start is free", day(8), day(10), existing, false},
		{"no candidates", day(10), day(15), nil, false},
		{
			"cancelled ignored",
			day(10), day(15),
			[]model.Booking{{DateStart: day(10), DateEnd: day(15), Status: model.StatusCancelled}},
			false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, HasOverlap(tt.existing, tt.start, tt.end))
		})
	}
}

func TestHasOverlap_Deterministic(t *testing.T) {
	t.Parallel()
	existing := []model.Booking{
		{DateStart: day(10), DateEnd: day(15), Status: model.StatusConfirmed},
	}
	for i := 0; i < 100; i++ {
		require.True(t, HasOverlap(existing, day(12), day(13)))
	}
}

func TestPickRoom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rooms []model.Room
		want  int64
	}{
		{
			"first available wins",
			[]model.Room{
				{ID: 3, TimesBooked: 0, Availability: true},
				{ID: 5, TimesBooked: 1, Availability: true},
			},
			3,
		},
		{
			"skips unavailable",
			[]model.Room{
				{ID: 3, Availability: false},
				{ID: 5, Availability: true},
			},
			5,
		},
		{"none available", []model.Room{{ID: 3}, {ID: 5}}, 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, pickRoom(tt.rooms))
		})
	}
}
