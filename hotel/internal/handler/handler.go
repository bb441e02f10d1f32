package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/hotel/internal/errs"
	"github.com/nborodulin471/booking-system/hotel/internal/model"
	"github.com/nborodulin471/booking-system/pkg/auth"
	mw "github.com/nborodulin471/booking-system/pkg/middleware"
	"github.com/nborodulin471/booking-system/pkg/validate"
)

type Handler struct {
	hotelSvc HotelService
	log      *zap.Logger
}

func New(hotelSvc HotelService, log *zap.Logger) *Handler {
	return &Handler{
		hotelSvc: hotelSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig()),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.JwtAuthentication,
	)

	api.GET("/hotels", h.ListHotels)
	api.POST("/hotels", h.CreateHotel, requireAdmin)
	api.GET("/hotels/:id", h.GetHotel)

	api.GET("/rooms", h.GetAvailableRooms)
	api.GET("/rooms/:id", h.GetRoom)
	api.GET("/rooms/recommend", h.GetRecommendedRooms)
	api.POST("/rooms", h.CreateRoom, requireAdmin)
	api.POST("/rooms/:id/confirm-availability", h.ConfirmAvailability)
	api.POST("/rooms/:id/release", h.ReleaseRoom)

	return e
}

func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, err := auth.FromContext(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		if ident.Role != auth.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateHotel(c echo.Context) error {
	var hotel model.Hotel
	if err := c.Bind(&hotel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(hotel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.hotelSvc.CreateHotel(c.Request().Context(), hotel)
	if err != nil {
		if errors.Is(err, errs.ErrHotelExists) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListHotels(c echo.Context) error {
	hotels, err := h.hotelSvc.ListHotels(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, hotels)
}

func (h *Handler) GetHotel(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	hotel, err := h.hotelSvc.GetHotel(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, hotel)
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var req model.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	room, err := h.hotelSvc.CreateRoom(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomExists):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "hotel does not exist")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, room)
}

func (h *Handler) GetRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	room, err := h.hotelSvc.GetRoom(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, room)
}

func (h *Handler) GetAvailableRooms(c echo.Context) error {
	rooms, err := h.hotelSvc.GetAvailableRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) GetRecommendedRooms(c echo.Context) error {
	resp, err := h.hotelSvc.GetRecommendedRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// ConfirmAvailability responds with a bare boolean body: callers parse it as
// the definitive word on whether the room was claimed.
func (h *Handler) ConfirmAvailability(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ok, err := h.hotelSvc.ConfirmAvailability(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ok)
}

func (h *Handler) ReleaseRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.hotelSvc.ReleaseRoom(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
