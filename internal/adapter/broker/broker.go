package broker

import (
	"errors"
	"fmt"

	"github.com/MikeRez0/ypshop/internal/adapter/config"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"go.uber.org/zap"
)

// New builds the publisher selected by configuration.
func New(cfg *config.Broker, log *zap.Logger) (port.EventPublisher, error) {
	switch cfg.Kind {
	case config.BrokerRabbitMQ:
		if cfg.RabbitMQURL == "" {
			return nil, errors.New("rabbitmq url is empty")
		}
		return NewRabbitPublisher(cfg.RabbitMQURL)
	case config.BrokerKafka:
		if len(cfg.Brokers) == 0 {
			return nil, errors.New("kafka brokers are empty")
		}
		return NewKafkaPublisher(cfg.Brokers, cfg.Topic)
	case config.BrokerLog:
		return NewLogPublisher(log), nil
	default:
		return nil, fmt.Errorf("unknown event broker %q", cfg.Kind)
	}
}
