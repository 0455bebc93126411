package ports

import "context"

// MessageConsumer — фоновый потребитель событий бэкенда (инвалидация корзин).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
