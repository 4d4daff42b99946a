// Package kafka wraps segmentio/kafka-go with the small producer surface the
// AgroCrédito service needs.
package kafka

import (
	"context"
	"fmt"
	"sync"

	kafkago "github.com/segmentio/kafka-go"
)

// Message is one record to publish. Messages sharing a Key land on the same
// partition, which keeps events for one aggregate in order.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Producer publishes messages, holding one lazily created writer per topic.
type Producer struct {
	cfg Config

	mu      sync.Mutex
	writers map[string]*kafkago.Writer
}

// NewProducer creates a Producer. No connection is made until the first Publish.
func NewProducer(cfg Config) *Producer {
	return &Producer{
		cfg:     cfg,
		writers: make(map[string]*kafkago.Writer),
	}
}

// Publish writes the given messages to topic, waiting for acks from all replicas.
func (p *Producer) Publish(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafkago.Message, len(messages))
	for i, msg := range messages {
		record := kafkago.Message{Key: msg.Key, Value: msg.Value}
		for name, value := range msg.Headers {
			record.Headers = append(record.Headers, kafkago.Header{Key: name, Value: []byte(value)})
		}
		batch[i] = record
	}

	if err := p.writerFor(topic).WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	return nil
}

// Close shuts down every writer. The first error encountered is returned.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing writer for topic %s: %w", topic, err)
		}
	}
	p.writers = make(map[string]*kafkago.Writer)
	return firstErr
}

func (p *Producer) writerFor(topic string) *kafkago.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	// Hash balancer so that a fixed key always maps to the same partition.
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(p.cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: p.cfg.batchTimeout(),
		RequiredAcks: kafkago.RequireAll,
	}
	p.writers[topic] = w
	return w
}
