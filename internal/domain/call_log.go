package domain

import (
	"time"

	"github.com/google/uuid"
)

// Итог вызова внешнего API для журнала.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected" // API ответил status=error
	OutcomeFailed   = "failed"   // ошибка транспорта/HTTP/декодирования
)

// CallLog - запись журнала вызовов внешнего API.
type CallLog struct {
	ID        uuid.UUID     `json:"id"`
	Endpoint  string        `json:"endpoint"`
	Outcome   string        `json:"outcome"`
	Message   string        `json:"message,omitempty"`
	Code      *int          `json:"code,omitempty"`
	Duration  time.Duration `json:"duration"`
	RequestID string        `json:"request_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
