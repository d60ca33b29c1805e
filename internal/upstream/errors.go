package upstream

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

// maxErrorBody - сколько байт тела ответа сохраняем в ошибке.
const maxErrorBody = 2048

// ErrResponseTooLarge - тело ответа больше лимита; не ретраится.
var ErrResponseTooLarge = errors.New("upstream: response too large")

// ConfigurationError - клиент не настроен (нет API-ключа); сеть не трогаем.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("upstream: %s is not configured", e.Setting)
}

// HTTPError - неуспешный HTTP-статус: неретраемый или ретраи исчерпаны.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Attempts   int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream: unexpected status code %d after %d attempt(s): %s",
		e.StatusCode, e.Attempts, string(e.Body))
}

// Retryable - 5xx и 408 считаются временными.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 408
}

// UpstreamMessage - msg/code из тела ошибки, если API прислал свой JSON.
func (e *HTTPError) UpstreamMessage() (string, *int, bool) {
	var resp domain.UpstreamResponse
	if err := json.Unmarshal(e.Body, &resp); err != nil || resp.Message == "" {
		return "", nil, false
	}
	return resp.Message, resp.Code, true
}

// TransportError - сетевой сбой после исчерпания попыток.
type TransportError struct {
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream: transport failure after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError - тело ответа не JSON. Не ретраится даже при HTTP 200.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("upstream: response is not valid JSON (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func truncateBody(raw []byte) []byte {
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	return append([]byte(nil), raw...)
}
