// Пакет auth - проверка операторского токена.
package auth

import (
	"context"
	"crypto/subtle"

	"github.com/Gunvolt24/cloak_gw/internal/ports"
)

var _ ports.Authorizer = (*StaticToken)(nil)

// StaticToken - сравнение с единственным токеном из конфигурации.
// Пустой токен в конфигурации не пускает никого.
type StaticToken struct {
	token []byte
}

func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: []byte(token)}
}

func (a *StaticToken) Authorized(_ context.Context, token string) bool {
	if len(a.token) == 0 || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare(a.token, []byte(token)) == 1
}
