package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/gateway/config"
	"github.com/nborodulin471/booking-system/gateway/internal/handler"
	"github.com/nborodulin471/booking-system/gateway/internal/service/booking"
	"github.com/nborodulin471/booking-system/gateway/internal/service/hotel"
	"github.com/nborodulin471/booking-system/pkg/httpserver"
	"github.com/nborodulin471/booking-system/pkg/logger"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "gateway")

	bookingSvc := booking.NewService(log, cfg)
	hotelSvc := hotel.NewService(log, cfg)
	h := handler.NewHandler(log, bookingSvc, hotelSvc)

	srv := httpserver.New(httpserver.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
