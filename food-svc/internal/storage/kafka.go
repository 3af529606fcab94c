package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"foods-backend/food-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishFoodCreated(ctx context.Context, event domain.FoodEvent) error {
	msg, err := foodMessage(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, msg)
}

// foodMessage keys events by food id so one food's events stay on one partition.
func foodMessage(event domain.FoodEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.Itoa(event.FoodID)),
		Value: payload,
	}, nil
}
