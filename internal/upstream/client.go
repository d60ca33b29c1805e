package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/ctxmeta"
	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
	"github.com/Gunvolt24/cloak_gw/pkg/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Проверка, что Client удовлетворяет порту приложения.
var _ ports.UpstreamCaller = (*Client)(nil)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 5
	defaultBackoffStep = 2 * time.Second
	maxResponseBody    = 16 << 20
)

// Config - параметры клиента внешнего API.
type Config struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration // таймаут одной попытки
	MaxAttempts int
	BackoffStep time.Duration // пауза перед попыткой n+1 равна n * BackoffStep
}

// Client - клиент внешнего API клоакинга с ограниченными ретраями.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	timeout     time.Duration
	maxAttempts int
	backoffStep time.Duration
	log         ports.Logger
	sleep       func(ctx context.Context, d time.Duration) error
	maxBody     int64
}

// NewClient - конструктор. httpClient == nil -> http.Client без общего таймаута:
// время ограничивается таймаутом попытки через контекст.
func NewClient(cfg Config, httpClient *http.Client, log ports.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	step := cfg.BackoffStep
	if step <= 0 {
		step = defaultBackoffStep
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		httpClient:  httpClient,
		timeout:     timeout,
		maxAttempts: attempts,
		backoffStep: step,
		log:         log,
		sleep:       sleepContext,
		maxBody:     maxResponseBody,
	}
}

// Call - один логический вызов: кодирование, до maxAttempts попыток с линейным backoff,
// декодирование JSON. Ошибки не проглатываются.
func (c *Client) Call(ctx context.Context, endpoint string, fields domain.Fields) (*domain.UpstreamResponse, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		metrics.UpstreamCalls.WithLabelValues(endpoint, "config_error").Inc()
		return nil, &ConfigurationError{Setting: "API key"}
	}

	ctx, span := telemetry.Tracer().Start(ctx, "upstream.call",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("upstream.endpoint", endpoint)),
	)
	defer span.End()

	body := EncodeForm(c.apiKey, fields)
	start := time.Now()

	resp, err := c.callWithRetry(ctx, endpoint, body)

	metrics.UpstreamCallDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.UpstreamCalls.WithLabelValues(endpoint, outcomeOf(err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("upstream.status", resp.Status))
	return resp, nil
}

// callWithRetry - цикл попыток. Пауза перед попыткой n+1 равна n * backoffStep.
func (c *Client) callWithRetry(ctx context.Context, endpoint, body string) (*domain.UpstreamResponse, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err := c.attempt(ctx, endpoint, body)
		if err == nil {
			metrics.UpstreamAttempts.WithLabelValues(endpoint, "ok").Inc()
			if attempt > 1 {
				c.log.Infof(ctx, "upstream %s succeeded on attempt %d", endpoint, attempt)
			}
			return resp, nil
		}
		lastErr = err

		// отмена вызывающим: дальше не пытаемся
		if ctxErr := ctx.Err(); ctxErr != nil {
			metrics.UpstreamAttempts.WithLabelValues(endpoint, "fatal").Inc()
			return nil, fmt.Errorf("upstream %s canceled: %w", endpoint, ctxErr)
		}
		if !Retryable(err) {
			metrics.UpstreamAttempts.WithLabelValues(endpoint, "fatal").Inc()
			return nil, withAttempts(err, attempt)
		}
		metrics.UpstreamAttempts.WithLabelValues(endpoint, "retryable").Inc()

		if attempt == c.maxAttempts {
			break
		}
		delay := time.Duration(attempt) * c.backoffStep
		c.log.Warnf(ctx, "upstream %s attempt %d/%d failed: %v (retry in %s)",
			endpoint, attempt, c.maxAttempts, err, delay)
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return nil, fmt.Errorf("upstream %s canceled: %w", endpoint, sleepErr)
		}
	}

	c.log.Errorf(ctx, "upstream %s failed after %d attempts: %v", endpoint, c.maxAttempts, lastErr)
	return nil, withAttempts(lastErr, c.maxAttempts)
}

// attempt - одна HTTP-попытка со своим таймаутом.
func (c *Client) attempt(ctx context.Context, endpoint, body string) (*domain.UpstreamResponse, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.baseURL+endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read upstream body: %w", err)}
	}
	if int64(len(raw)) > c.maxBody {
		return nil, fmt.Errorf("%w: status %d, more than %d bytes", ErrResponseTooLarge, resp.StatusCode, c.maxBody)
	}

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: truncateBody(raw)}
	}

	var out domain.UpstreamResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Body: truncateBody(raw), Err: err}
	}
	return &out, nil
}

// withAttempts - проставляет число сделанных попыток в типизированную ошибку.
func withAttempts(err error, attempts int) error {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		httpErr.Attempts = attempts
		return err
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		tErr.Attempts = attempts
	}
	return err
}

func outcomeOf(err error) string {
	var (
		cfgErr    *ConfigurationError
		httpErr   *HTTPError
		tErr      *TransportError
		decodeErr *DecodeError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &cfgErr):
		return "config_error"
	case errors.Is(err, ErrResponseTooLarge):
		return "too_large"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &httpErr):
		return "http_error"
	case errors.As(err, &decodeErr):
		return "decode_error"
	case errors.As(err, &tErr):
		return "transport_error"
	default:
		return "transport_error"
	}
}

// sleepContext - ждёт d или останавливается по контексту.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
