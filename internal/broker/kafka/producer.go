package kafkabroker

import (
	"context"
	"time"

	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const defaultWriteTimeout = 5 * time.Second

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg ProducerConfig) *Producer {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           cfg.WriteTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{
		writer: w,
		topic:  cfg.Topic,
	}
}

// SendMessage writes one report. Messages with the same key (the log source)
// land on the same partition.
func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.WithField("topic", p.topic).Errorf("Failed to send message: %v", err)
		return errorsUtils.WrapPathErr(err)
	}
	log.WithFields(log.Fields{
		"topic": p.topic,
		"key":   string(key),
		"bytes": len(value),
	}).Debug("Message sent")
	return nil
}

func (p *Producer) Topic() string {
	return p.topic
}

func (p *Producer) Close() error {
	log.Info("Closing Kafka producer...")
	return p.writer.Close()
}
