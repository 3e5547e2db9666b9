package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/kafka/producer"
)

type ActivityPublisher struct {
	*producer.Producer
	topic string
}

func NewActivityPublisher(producer *producer.Producer, topic string) *ActivityPublisher {
	return &ActivityPublisher{
		producer,
		topic,
	}
}

func (p *ActivityPublisher) PublishActivity(ctx context.Context, event dto.ActivityEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ActivityPublisher - PublishActivity - json.Marshal: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.PhotoID.String()),
		Value: b,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	err = p.Writer.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("ActivityPublisher - PublishActivity - p.Writer.WriteMessages: %w", err)
	}

	return nil
}

func (p *ActivityPublisher) Close() error {
	err := p.Producer.Close()
	if err != nil {
		return fmt.Errorf("ActivityPublisher - Close: %w", err)
	}

	return nil
}
