package rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/booking/config"
	"github.com/nborodulin471/booking-system/booking/internal/model"
	"github.com/nborodulin471/booking-system/pkg/auth"
)

const (
	callTimeout  = 5 * time.Second
	maxAttempts  = 3
	retryBackoff = 300 * time.Millisecond
)

// Client talks to the hotel service's room endpoints. Every call forwards the
// caller's own bearer token; the client never holds credentials of its own.
type Client struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.HotelHTTPServer
}

func NewClient(log *zap.Logger, cfg config.Config) *Client {
	return &Client{
		log:    log.Named("rooms"),
		client: &http.Client{Timeout: callTimeout},
		cfg:    cfg.HotelHTTPServer,
	}
}

func (c *Client) ListAvailable(ctx context.Context, token string) ([]model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/api/v1/rooms/recommend", net.JoinHostPort(c.cfg.Host, c.cfg.Port)), http.NoBody)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("rooms recommend: unexpected status %d", resp.StatusCode)
	}
	var recommend model.RecommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&recommend); err != nil {
		return nil, err
	}
	return recommend.Rooms, nil
}

// Confirm asks the hotel service to flip the room to unavailable. Transport
// errors are retried with backoff; a well-formed negative answer is definitive
// and returned as ok=false without an error.
func (c *Client) Confirm(ctx context.Context, roomID int64, token string) (bool, error) {
	url := fmt.Sprintf("http://%s/api/v1/rooms/%d/confirm-availability",
		net.JoinHostPort(c.cfg.Host, c.cfg.Port), roomID)

	body, err := c.post(ctx, url, token)
	if err != nil {
		return false, err
	}
	ok, err := strconv.ParseBool(strings.TrimSpace(string(body)))
	if err != nil {
		return false, errors.Wrap(err, "confirm-availability response")
	}
	return ok, nil
}

func (c *Client) Release(ctx context.Context, roomID int64, token string) error {
	url := fmt.Sprintf("http://%s/api/v1/rooms/%d/release",
		net.JoinHostPort(c.cfg.Host, c.cfg.Port), roomID)

	_, err := c.post(ctx, url, token)
	return err
}

// post retries on transport failures only. A response that arrived, whatever
// its status, is the remote's definitive word and is not replayed: the confirm
// endpoint is not idempotent.
func (c *Client) post(ctx context.Context, url, token string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		req, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, http.NoBody)
		if err != nil {
			cancel()
			return nil, err
		}
		c.setHeaders(req, token)

		resp, err := c.client.Do(req)
		if err != nil {
			cancel()
			lastErr = err
			c.log.Warn("room call failed", zap.String("url", url), zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("%s: unexpected status %d", url, resp.StatusCode)
		}
		return data, nil
	}
	return nil, errors.Wrap(lastErr, "room call attempts exhausted")
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set(auth.AuthorizationHeader, auth.Bearer+token)
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
}
