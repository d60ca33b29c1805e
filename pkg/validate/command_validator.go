package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
)

// Проверка, что CommandValidator удовлетворяет порту.
var _ ports.CommandValidator = (*CommandValidator)(nil)

// ErrInvalidCommand - базовая ошибка валидации команды управления кэшем.
var ErrInvalidCommand = errors.New("cache command validation failed")

const maxRequestedByLen = 128

// CommandValidator - проверка команд управления кэшем.
type CommandValidator struct{}

func NewCommandValidator() *CommandValidator { return &CommandValidator{} }

// Validate - действие из известного списка, инициатор ограничен по длине.
func (v *CommandValidator) Validate(_ context.Context, cmd *domain.CacheCommand) error {
	if cmd == nil {
		return fmt.Errorf("%w: команда не может быть nil", ErrInvalidCommand)
	}
	switch cmd.Action {
	case domain.CacheActionClear, domain.CacheActionWarmUp:
	case "":
		return fmt.Errorf("%w: action обязателен", ErrInvalidCommand)
	default:
		return fmt.Errorf("%w: неизвестное действие %q", ErrInvalidCommand, cmd.Action)
	}
	if utf8.RuneCountInString(cmd.RequestedBy) > maxRequestedByLen {
		return fmt.Errorf("%w: requested_by длиннее %d символов", ErrInvalidCommand, maxRequestedByLen)
	}
	if strings.ContainsAny(cmd.RequestedBy, "\r\n") {
		return fmt.Errorf("%w: requested_by содержит перевод строки", ErrInvalidCommand)
	}
	return nil
}
