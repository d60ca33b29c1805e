package usecase

import (
	"context"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/ctxmeta"
	"github.com/google/uuid"
)

var (
	_ ports.GatewayService = (*GatewayService)(nil)
	_ ports.CallLogReader  = (*GatewayService)(nil)
)

// GatewayService - прямые вызовы API без кэша (изменения и детальные выборки).
// Ответ и ошибка клиента отдаются вызывающему как есть.
type GatewayService struct {
	caller ports.UpstreamCaller
	logs   ports.CallLogRepository // может быть nil
	log    ports.Logger
	now    func() time.Time
}

func NewGatewayService(caller ports.UpstreamCaller, logs ports.CallLogRepository, log ports.Logger) *GatewayService {
	return &GatewayService{
		caller: caller,
		logs:   logs,
		log:    log,
		now:    time.Now,
	}
}

func (s *GatewayService) Call(ctx context.Context, endpoint string, fields domain.Fields) (*domain.UpstreamResponse, error) {
	start := s.now()
	resp, err := s.caller.Call(ctx, endpoint, fields)
	s.record(ctx, endpoint, resp, err, s.now().Sub(start))
	return resp, err
}

// record - запись в журнал; сбой журнала не влияет на ответ.
func (s *GatewayService) record(ctx context.Context, endpoint string, resp *domain.UpstreamResponse, callErr error, took time.Duration) {
	if s.logs == nil {
		return
	}

	entry := &domain.CallLog{
		ID:        uuid.New(),
		Endpoint:  endpoint,
		Duration:  took,
		CreatedAt: s.now().UTC(),
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		entry.RequestID = rid
	}

	switch {
	case callErr != nil:
		entry.Outcome = domain.OutcomeFailed
		entry.Message = callErr.Error()
	case resp == nil:
		entry.Outcome = domain.OutcomeFailed
	case resp.OK():
		entry.Outcome = domain.OutcomeSuccess
		entry.Message = resp.Message
		entry.Code = resp.Code
	default:
		entry.Outcome = domain.OutcomeRejected
		entry.Message = resp.Message
		entry.Code = resp.Code
	}

	// журнал пишем даже если запрос клиента уже отменён
	if err := s.logs.Save(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Warnf(ctx, "call log save failed endpoint=%s err=%v", endpoint, err)
	}
}

// RecentCalls - последние записи журнала.
func (s *GatewayService) RecentCalls(ctx context.Context, limit, offset int) ([]*domain.CallLog, error) {
	if s.logs == nil {
		return []*domain.CallLog{}, nil
	}
	return s.logs.Recent(ctx, limit, offset)
}
