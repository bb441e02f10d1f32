package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/nborodulin471/booking-system/booking/app"
	"github.com/nborodulin471/booking-system/booking/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment")
	}

	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Second*15),
	)

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
