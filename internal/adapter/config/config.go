package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
	Auth     *Auth
	Redis    *Redis
	Broker   *Broker
	Relay    *Relay
	Policy   *Policy
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

const (
	BrokerRabbitMQ = "rabbitmq"
	BrokerKafka    = "kafka"
	BrokerLog      = "log"
)

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
	LogFile  string `env:"LOG_FILE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Auth struct {
	// TokenKey is a hex encoded paseto v4 symmetric key. A random key is used when empty.
	TokenKey string `env:"TOKEN_KEY"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDR"`
}

type Broker struct {
	Kind        string   `env:"EVENT_BROKER" envDefault:"log"`
	RabbitMQURL string   `env:"RABBITMQ_URL"`
	Brokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic       string   `env:"KAFKA_TOPIC" envDefault:"order.paid"`
}

type Relay struct {
	Workers   int           `env:"RELAY_WORKERS" envDefault:"2"`
	Interval  time.Duration `env:"RELAY_INTERVAL" envDefault:"5s"`
	BatchSize int           `env:"RELAY_BATCH" envDefault:"50"`
}

type Policy struct {
	File string `env:"INSTALLMENT_CONFIG"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var app App
	var auth Auth
	var redis Redis
	var broker Broker
	var relay Relay
	var policy Policy

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&app.LogFile, "f", "", "Log file, rotated")
	flag.StringVar(&policy.File, "i", "", "Installment policy YAML file")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&broker)
	if err != nil {
		return nil, fmt.Errorf("error parsing broker config: %w", err)
	}
	err = env.Parse(&relay)
	if err != nil {
		return nil, fmt.Errorf("error parsing relay config: %w", err)
	}
	err = env.Parse(&policy)
	if err != nil {
		return nil, fmt.Errorf("error parsing installment config: %w", err)
	}

	switch broker.Kind {
	case BrokerRabbitMQ, BrokerKafka, BrokerLog:
	default:
		return nil, fmt.Errorf("unknown event broker %q", broker.Kind)
	}
	if relay.Workers <= 0 {
		return nil, fmt.Errorf("relay workers must be positive, got %d", relay.Workers)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		App:      &app,
		Auth:     &auth,
		Redis:    &redis,
		Broker:   &broker,
		Relay:    &relay,
		Policy:   &policy,
	}

	return &config, nil
}
