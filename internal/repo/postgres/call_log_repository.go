package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CallLogRepository удовлетворяет порту.
var _ ports.CallLogRepository = (*CallLogRepository)(nil)

const defaultRecentLimit = 50

// CallLogRepository - журнал вызовов внешнего API на Postgres (pgxpool).
type CallLogRepository struct {
	pool *pgxpool.Pool
}

// NewCallLogRepository - конструктор CallLogRepository.
func NewCallLogRepository(pool *pgxpool.Pool) *CallLogRepository {
	return &CallLogRepository{pool: pool}
}

// Save - добавляет запись. Пустые ID и CreatedAt заполняются здесь.
// Повторная запись с тем же ID игнорируется.
func (r *CallLogRepository) Save(ctx context.Context, entry *domain.CallLog) error {
	if entry == nil || entry.Endpoint == "" {
		return errors.New("call log is empty or endpoint is required")
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var code *int32
	if entry.Code != nil {
		c := int32(*entry.Code)
		code = &c
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO call_logs (
			id, endpoint, outcome, message, code, duration_ms, request_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`,
		entry.ID.String(), entry.Endpoint, entry.Outcome, entry.Message, code,
		entry.Duration.Milliseconds(), entry.RequestID, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert call log: %w", err)
	}
	return nil
}

// Recent - страница журнала, новые записи первыми.
func (r *CallLogRepository) Recent(ctx context.Context, limit, offset int) ([]*domain.CallLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, endpoint, outcome, message, code, duration_ms, request_id, created_at
		FROM call_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select call logs: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.CallLog, 0, limit)
	for rows.Next() {
		var (
			rawID      string
			code       *int32
			durationMS int64
			entry      domain.CallLog
		)
		if err := rows.Scan(
			&rawID, &entry.Endpoint, &entry.Outcome, &entry.Message, &code,
			&durationMS, &entry.RequestID, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan call log: %w", err)
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("parse call log id %q: %w", rawID, err)
		}
		entry.ID = id
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		if code != nil {
			c := int(*code)
			entry.Code = &c
		}
		out = append(out, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("call log rows: %w", err)
	}
	return out, nil
}
