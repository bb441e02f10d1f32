package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/hotel/config"
	"github.com/nborodulin471/booking-system/hotel/internal/handler"
	"github.com/nborodulin471/booking-system/hotel/internal/repository"
	"github.com/nborodulin471/booking-system/hotel/internal/service"
	"github.com/nborodulin471/booking-system/hotel/migrations"
	"github.com/nborodulin471/booking-system/pkg/httpserver"
	"github.com/nborodulin471/booking-system/pkg/kafka"
	"github.com/nborodulin471/booking-system/pkg/logger"
	"github.com/nborodulin471/booking-system/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "hotel")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}
	svc := service.NewService(repo, log)
	h := handler.New(svc, log)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ReconcileConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka consumer %v", err)
	}
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.Reconcile, log), log, kafka.ReconcileTopic)

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

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
