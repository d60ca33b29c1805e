package ports

import "context"

type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// BackgroundRunner - фоновая задача, живущая до отмены контекста.
type BackgroundRunner interface {
	Run(ctx context.Context) error
}
