package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
	"github.com/Gunvolt24/cloak_gw/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// handleMessage - выполняет команду; true означает, что оффсет можно коммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleCacheCommand(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, validate.ErrInvalidCommand):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid command offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "command failed offset=%d: %v (will retry without commit)", msg.Offset, err)
		return false
	}
}

// processUntilDone - выполняет команду, повторяя при временных ошибках, и коммитит оффсет.
// false - контекст отменён до успешной обработки, оффсет не закоммичен.
func (c *Consumer) processUntilDone(ctx context.Context, topic string, msg *kafka.Message) bool {
	backoff := c.retryInitial
	for {
		if c.handleMessage(ctx, topic, msg) {
			c.commitSafely(ctx, msg)
			return true
		}
		if !c.sleepWithBackoff(ctx, c.withJitterEqual(backoff)) {
			return false
		}
		backoff = c.nextBackoff(backoff)
	}
}

// commitSafely - коммит оффсета; ошибка только логируется.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff - ждёт d; false, если контекст отменён раньше.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// nextBackoff - удвоение с потолком retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return min(current*2, c.retryMax)
}

// withJitterEqual - половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}
