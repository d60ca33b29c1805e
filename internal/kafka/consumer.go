package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет порту приложения.
var _ ports.MessageConsumer = (*Consumer)(nil)

const (
	defaultProcessTimeout = 2 * time.Minute // прогрев всех справочников с ретраями
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

// reader - минимальный контракт над kafka.Reader для подмены в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// commandHandler - исполнитель команд управления кэшем (clear/warmup).
type commandHandler interface {
	HandleCacheCommand(ctx context.Context, raw []byte) error
}

// Consumer - читает команды оператора из Kafka и применяет их к локальному кэшу.
type Consumer struct {
	reader         reader
	handler        commandHandler
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer - конструктор. Оффсеты коммитятся вручную после обработки.
func NewConsumer(cfg *ConsumerConfig, handler commandHandler, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, handler, log)
}

func newConsumer(r reader, cfg *ConsumerConfig, handler commandHandler, log ports.Logger) *Consumer {
	c := &Consumer{
		reader:         r,
		handler:        handler,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		retryInitial:   cfg.RetryInitial,
		retryMax:       cfg.RetryMax,
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if c.processTimeout <= 0 {
		c.processTimeout = defaultProcessTimeout
	}
	if c.retryInitial <= 0 {
		c.retryInitial = defaultRetryInitial
	}
	if c.retryMax < c.retryInitial {
		c.retryMax = max(defaultRetryMax, c.retryInitial)
	}
	return c
}

// Run - цикл до отмены контекста:
// 1) FetchMessage без автокоммита, ошибки брокера -> экспоненциальный backoff с jitter;
// 2) команда выполнена -> коммит;
// 3) невалидная команда -> лог и коммит (пропускаем навсегда);
// 4) временная ошибка -> повтор того же сообщения с backoff, пока не выполнится;
//    следующий оффсет не читается и не коммитится раньше упавшего.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "cache-control consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial

	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if !c.processUntilDone(ctx, rc.Topic, &msg) {
			return ctx.Err()
		}
	}
}

// Close - закрывает reader. Повторный вызов ничего не делает.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
