package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/MikeRez0/ypshop/internal/adapter/config"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func paidMessage() *domain.OutboxMessage {
	return &domain.OutboxMessage{
		ID:        "5f1c7a52-1111-4b1a-9a53-6f0f4c1d2e3a",
		Topic:     domain.TopicOrderPaid,
		Key:       "20240310143000123456",
		Payload:   []byte(`{"order_no":"20240310143000123456"}`),
		CreatedAt: time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewKafkaConfig())
	msg := paidMessage()

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(pm *sarama.ProducerMessage) error {
		key, err := pm.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != msg.Key {
			return errors.New("message must be keyed by order number")
		}
		if pm.Topic != "shop.events" {
			return errors.New("unexpected topic " + pm.Topic)
		}
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newKafkaPublisher(producer, "shop.events")
	assert.NoError(t, p.Publish(context.Background(), msg))
	assert.ErrorIs(t, p.Publish(context.Background(), msg), sarama.ErrOutOfBrokers)
	assert.NoError(t, p.Close())
}

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
}

func (c *fakeChannel) PublishWithDeferredConfirmWithContext(_ context.Context, exchange, key string,
	_, _ bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.published = append(c.published, msg)
	c.keys = append(c.keys, exchange+"/"+key)
	return nil, nil
}

func (c *fakeChannel) Close() error { return nil }

func TestRabbitPublisher(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch}
	msg := paidMessage()

	require.NoError(t, p.Publish(context.Background(), msg))
	require.Len(t, ch.published, 1)
	assert.Equal(t, []string{"ypshop.events/order.paid"}, ch.keys)
	assert.Equal(t, msg.ID, ch.published[0].MessageId)
	assert.Equal(t, msg.Payload, ch.published[0].Body)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

	ch.err = amqp.ErrClosed
	assert.ErrorIs(t, p.Publish(context.Background(), msg), amqp.ErrClosed)
	assert.NoError(t, p.Close())
}

func TestNew(t *testing.T) {
	p, err := New(&config.Broker{Kind: config.BrokerLog}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LogPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), paidMessage()))

	_, err = New(&config.Broker{Kind: config.BrokerKafka}, zap.NewNop())
	assert.Error(t, err)

	_, err = New(&config.Broker{Kind: config.BrokerRabbitMQ}, zap.NewNop())
	assert.Error(t, err)

	_, err = New(&config.Broker{Kind: "nats"}, zap.NewNop())
	assert.Error(t, err)
}
