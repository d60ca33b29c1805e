//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/google/uuid"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeCallLog - валидная запись журнала с уникальными ID и request_id.
func MakeCallLog(opts ...func(*domain.CallLog)) domain.CallLog {
	code := 0
	e := domain.CallLog{
		ID:        uuid.New(),
		Endpoint:  domain.EndpointFlowsList,
		Outcome:   domain.OutcomeSuccess,
		Code:      &code,
		Duration:  120 * time.Millisecond,
		RequestID: "req-" + UniqSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, fn := range opts {
		fn(&e)
	}
	return e
}

func WithEndpoint(endpoint string) func(*domain.CallLog) {
	return func(e *domain.CallLog) { e.Endpoint = endpoint }
}

// WithRejected - API ответил status=error с сообщением и без кода.
func WithRejected(msg string) func(*domain.CallLog) {
	return func(e *domain.CallLog) {
		e.Outcome = domain.OutcomeRejected
		e.Message = msg
		e.Code = nil
	}
}

func WithCreatedAt(at time.Time) func(*domain.CallLog) {
	return func(e *domain.CallLog) { e.CreatedAt = at.UTC().Truncate(time.Millisecond) }
}
