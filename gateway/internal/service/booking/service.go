package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/gateway/config"
	"github.com/nborodulin471/booking-system/gateway/internal/model"
	"github.com/nborodulin471/booking-system/pkg/auth"
	"github.com/nborodulin471/booking-system/pkg/breaker"
)

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.BookingHTTPServer
	cb     breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log,
		client: &http.Client{Timeout: 30 * time.Second},
		cfg:    cfg.BookingHTTPServer,
		cb:     breaker.New(10, 5*time.Second, 0.5, 3),
	}
}

func (s *Service) CB() breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) GetBookings(ctx context.Context, token string) ([]model.Booking, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/api/v1/bookings", net.JoinHostPort(s.cfg.Host, s.cfg.Port)), http.NoBody)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	req.Header.Set(auth.AuthorizationHeader, auth.Bearer+token)
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	var bookings []model.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return bookings, resp.StatusCode, nil
}

// Proxy forwards the request as-is to the booking service, method, body and
// headers included.
func (s *Service) Proxy(c echo.Context) (data []byte, statusCode int, err error) {
	ur := c.Request().URL
	ur.Scheme = "http"
	ur.Host = net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	req, err := http.NewRequestWithContext(c.Request().Context(), c.Request().Method, ur.String(), c.Request().Body)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	req.Header = c.Request().Header.Clone()
	if ident, err := auth.FromContext(c.Request().Context()); err == nil {
		req.Header.Set(auth.XUserNameHeader, ident.Username)
		req.Header.Set(auth.XUserRoleHeader, ident.Role)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return data, resp.StatusCode, nil
}
