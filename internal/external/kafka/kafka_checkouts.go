package loyalty

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

// Фид чеков из POS
type KafkaCheckout struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *KafkaCheckout, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_CHECKOUT_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_CHECKOUT_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_CHECKOUT_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_CHECKOUT_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "checkouts_loyalty",
	}
	return &KafkaCheckout{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaCheckout) GetNewMessage(ctx context.Context) (checkoutJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *KafkaCheckout) CloseReader() {
	k.reader.Close()
}
