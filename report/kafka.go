package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink 把报告发布到 Kafka topic，key 为 "<algorithm>/<input>"，
// 相同参数的运行落在同一分区，便于按顺序消费对比
type KafkaSink struct {
	w messageWriter
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Write(ctx context.Context, r *Report) error {
	msg, err := newMessage(r)
	if err != nil {
		return err
	}
	if err := s.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.w.Close()
}

func newMessage(r *Report) (kafka.Message, error) {
	value, err := r.Marshal()
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal report: %w", err)
	}
	return kafka.Message{
		Key:   []byte(r.Algorithm + "/" + strconv.Itoa(r.Input)),
		Value: value,
		Time:  r.StartedAt,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}
