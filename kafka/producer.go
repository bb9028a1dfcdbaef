package kafka

import (
	"context"
	"encoding/json"

	"shop-backend/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes checkout events. Messages are keyed by user id so a
// single user's events stay ordered within a partition.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

func (p *Producer) SendCheckoutEvent(event models.CheckoutEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		zap.L().Warn("failed to send Kafka message", zap.Error(err), zap.String("topic", p.topic))
		return err
	}
	return nil
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
