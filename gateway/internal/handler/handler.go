package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nborodulin471/booking-system/pkg/auth"
	"github.com/nborodulin471/booking-system/pkg/breaker"
	mw "github.com/nborodulin471/booking-system/pkg/middleware"

	"github.com/nborodulin471/booking-system/gateway/internal/model"
)

const rps = 100

type Handler struct {
	log     *zap.Logger
	booking BookingService
	hotel   HotelService
}

func NewHandler(log *zap.Logger, booking BookingService, hotel HotelService) *Handler {
	return &Handler{
		log:     log,
		booking: booking,
		hotel:   hotel,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.Use(
		middleware.Recover(),
		middleware.CORS(),
	)
	e.GET("/health", h.health)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig()),
		middleware.RequestID(),
		mw.NewRateLimiter(rps),
	)
	api.POST("/register", h.proxyBooking)
	api.POST("/authorize", h.proxyBooking)

	authed := api.Group("", mw.JwtAuthentication)
	authed.POST("/booking", h.proxyBooking)
	authed.GET("/bookings", h.GetBookings)
	authed.GET("/booking/:id", h.proxyBooking)
	authed.DELETE("/booking/:id", h.proxyBooking)

	authed.GET("/hotels", h.proxyHotel)
	authed.POST("/hotels", h.proxyHotel)
	authed.GET("/hotels/:id", h.proxyHotel)
	authed.GET("/rooms", h.proxyHotel)
	authed.POST("/rooms", h.proxyHotel)
	authed.GET("/rooms/:id", h.proxyHotel)
	authed.GET("/rooms/recommend", h.proxyHotel)

	return e
}

func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, "OK")
}

// GetBookings fans out to the hotel service to attach room details to each
// booking. Room lookups degrade gracefully: when the hotel service is down or
// its breaker is open, bookings are returned without room data.
func (h *Handler) GetBookings(c echo.Context) error {
	ident, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var (
		bookings []model.Booking
		code     int
	)
	if err := h.booking.CB().Call(func() error {
		var err error
		bookings, code, err = h.booking.GetBookings(c.Request().Context(), ident.Token)
		return err
	}); err != nil {
		if errors.Is(err, breaker.ErrOpen) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if code != http.StatusOK {
		return echo.NewHTTPError(code)
	}

	res := make([]model.BookingWithRoom, len(bookings))
	g, ctx := errgroup.WithContext(c.Request().Context())
	for i, b := range bookings {
		i, b := i, b
		g.Go(func() error {
			res[i].Booking = b
			err := h.hotel.CB().Call(func() error {
				room, _, err := h.hotel.GetRoom(ctx, b.RoomID, ident.Token)
				if err != nil {
					return err
				}
				res[i].Room = &room
				return nil
			})
			if err != nil {
				h.log.Warn("room lookup failed",
					zap.Int64("room_id", b.RoomID), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) proxyBooking(c echo.Context) error {
	return h.forward(c, h.booking)
}

func (h *Handler) proxyHotel(c echo.Context) error {
	return h.forward(c, h.hotel)
}

type proxyService interface {
	Proxy(c echo.Context) (data []byte, statusCode int, err error)
	CB() breaker.CircuitBreaker
}

func (h *Handler) forward(c echo.Context, svc proxyService) error {
	var (
		data []byte
		code int
	)
	if err := svc.CB().Call(func() error {
		var err error
		data, code, err = svc.Proxy(c)
		return err
	}); err != nil {
		if errors.Is(err, breaker.ErrOpen) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if len(data) == 0 {
		return c.NoContent(code)
	}
	return c.JSONBlob(code, data)
}
