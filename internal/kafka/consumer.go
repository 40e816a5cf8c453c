package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded flight event.
type EventHandler func(context.Context, FlightEvent) error

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads flight events and hands each one to the handler. Messages
// that fail to decode are logged and skipped; a handler error stops the
// loop.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, ok := decodeEvent(msg)
		if !ok {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeEvent(msg kafka.Message) (FlightEvent, bool) {
	var event FlightEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("decode flight event error: %v", err)
		return FlightEvent{}, false
	}
	return event, true
}
