package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/nborodulin471/booking-system/pkg/kafka"
	"github.com/nborodulin471/booking-system/pkg/logger"
	"github.com/nborodulin471/booking-system/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKING_HTTP_PORT" default:"8081"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type HotelHTTPServer struct {
	Host string `envconfig:"HOTEL_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"HOTEL_HTTP_PORT" default:"8082"`
}

type Config struct {
	Server          HTTPServer `yaml:"server"`
	HotelHTTPServer HotelHTTPServer
	Kafka           kafka.Config
	Database        postgres.DB `yaml:"db"`
	Log             logger.Log  `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
