package kafka

import "time"

// Config holds connection and batching parameters for the producer.
type Config struct {
	Brokers []string

	// BatchTimeout bounds how long a writer buffers before flushing.
	// Zero selects the 10ms default.
	BatchTimeout time.Duration
}

func (c Config) batchTimeout() time.Duration {
	if c.BatchTimeout <= 0 {
		return 10 * time.Millisecond
	}
	return c.BatchTimeout
}
