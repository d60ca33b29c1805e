package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
)

// DecodeCacheCommand - строгий разбор команды: неизвестные поля и хвост после объекта запрещены.
// action приводится к нижнему регистру.
func DecodeCacheCommand(raw []byte) (*domain.CacheCommand, error) {
	var cmd domain.CacheCommand
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidCommand, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidCommand)
	}
	cmd.Action = strings.ToLower(strings.TrimSpace(cmd.Action))
	cmd.RequestedBy = strings.TrimSpace(cmd.RequestedBy)
	return &cmd, nil
}

// ValidateCommandFromJSON - разбор и валидация одной команды.
func ValidateCommandFromJSON(ctx context.Context, validator ports.CommandValidator, raw []byte) (*domain.CacheCommand, error) {
	cmd, err := DecodeCacheCommand(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}
