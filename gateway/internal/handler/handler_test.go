package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/gateway/internal/handler"
	service_mocks "github.com/nborodulin471/booking-system/gateway/internal/handler/mocks"
	"github.com/nborodulin471/booking-system/gateway/internal/model"
	"github.com/nborodulin471/booking-system/pkg/auth"
	"github.com/nborodulin471/booking-system/pkg/breaker"
)

func bearer(t *testing.T) string {
	t.Helper()
	token, _, err := auth.NewToken("ivan", auth.RoleUser, "ivan@example.com", time.Hour)
	require.NoError(t, err)
	return auth.Bearer + token
}

func TestHandler_GetBookings_Enrichment(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	bookingSvc := service_mocks.NewMockBookingService(c)
	hotelSvc := service_mocks.NewMockHotelService(c)

	bookings := []model.Booking{
		{ID: 1, RoomID: 7, Status: "CONFIRMED"},
		{ID: 2, RoomID: 8, Status: "CONFIRMED"},
	}
	bookingSvc.EXPECT().CB().Return(breaker.New(10, time.Second, 0.5, 3)).AnyTimes()
	bookingSvc.EXPECT().GetBookings(gomock.Any(), gomock.Any()).Return(bookings, http.StatusOK, nil)

	// Room 7 resolves, room 8 does not; the listing must degrade, not fail.
	hotelSvc.EXPECT().CB().Return(breaker.New(10, time.Second, 0.5, 3)).AnyTimes()
	hotelSvc.EXPECT().GetRoom(gomock.Any(), int64(7), gomock.Any()).
		Return(model.Room{ID: 7, Number: 101}, http.StatusOK, nil)
	hotelSvc.EXPECT().GetRoom(gomock.Any(), int64(8), gomock.Any()).
		Return(model.Room{}, http.StatusBadRequest, errors.New("hotel down"))

	h := handler.NewHandler(zap.NewExample().Named("test"), bookingSvc, hotelSvc)
	e := h.NewRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", http.NoBody)
	r.Header.Set(auth.AuthorizationHeader, bearer(t))
	w := httptest.NewRecorder()

	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var res []model.BookingWithRoom
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 2)
	require.NotNil(t, res[0].Room)
	require.Equal(t, int64(7), res[0].Room.ID)
	require.Nil(t, res[1].Room)
}

func TestHandler_GetBookings_BreakerOpen(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	bookingSvc := service_mocks.NewMockBookingService(c)
	hotelSvc := service_mocks.NewMockHotelService(c)

	cb := breaker.New(1, time.Minute, 0.5, 1)
	_ = cb.Call(func() error { return errors.New("down") }) // trip it
	bookingSvc.EXPECT().CB().Return(cb).AnyTimes()

	h := handler.NewHandler(zap.NewExample().Named("test"), bookingSvc, hotelSvc)
	e := h.NewRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", http.NoBody)
	r.Header.Set(auth.AuthorizationHeader, bearer(t))
	w := httptest.NewRecorder()

	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_Unauthorized(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()

	h := handler.NewHandler(zap.NewExample().Named("test"),
		service_mocks.NewMockBookingService(c), service_mocks.NewMockHotelService(c))
	e := h.NewRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", http.NoBody)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
