package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func success(data string) *domain.UpstreamResponse {
	return &domain.UpstreamResponse{Status: domain.StatusSuccess, Data: json.RawMessage(data)}
}

func intPtr(v int) *int { return &v }
