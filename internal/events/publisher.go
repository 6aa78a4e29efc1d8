// Package events publishes order lifecycle messages to Kafka when a
// broker is configured; otherwise a no-op publisher is used.
package events

import (
	"encoding/json"
	"time"

	"hotelapp-backend/internal/config"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

type OrderCreated struct {
	OrderID      uint      `json:"order_id"`
	RestaurantID uint      `json:"restaurant_id"`
	OrderType    string    `json:"order_type"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type Publisher interface {
	PublishOrderCreated(event OrderCreated) error
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	logrus.Info("kafka producer connected")
	return &KafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaPublisher) PublishOrderCreated(event OrderCreated) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}
	logrus.Debugf("order event sent: topic=%s partition=%d offset=%d", p.topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error { return p.producer.Close() }

type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(OrderCreated) error { return nil }

// NewPublisher returns the Kafka publisher when enabled. A broker
// connection failure downgrades to the no-op publisher instead of
// blocking startup.
func NewPublisher(cfg *config.Config) Publisher {
	if !cfg.KafkaEnabled {
		return NopPublisher{}
	}
	p, err := NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		logrus.Errorf("kafka unavailable, order events disabled: %v", err)
		return NopPublisher{}
	}
	return p
}
