package ports

import "context"

// Authorizer - единственный вопрос к подсистеме авторизации: пускать ли вызывающего.
type Authorizer interface {
	Authorized(ctx context.Context, token string) bool
}
