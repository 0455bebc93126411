package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_cart/config"
	"github.com/Gunvolt24/wb_cart/internal/app"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}
func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	fc := &fakeConsumer{}
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    srv,
		KafkaConsumer: fc,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if atomic.LoadInt32(&fc.runCalls) == 0 {
		t.Fatalf("consumer.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

// loadConfig — конфигурация без внешних зависимостей: memory-бэкенд, memory-кэш, без Kafka.
func loadConfig(t *testing.T, prefix string) *config.Config {
	t.Helper()
	t.Setenv(prefix+"_KAFKA_ENABLED", "false")
	t.Setenv(prefix+"_HTTP_GIN_MODE", "test")
	cfg, err := config.LoadWithPrefix(prefix)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestBootstrap_InMemory(t *testing.T) {
	cfg := loadConfig(t, "CART_BOOT_MEM")

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	defer cleanup()

	if a.KafkaConsumer != nil {
		t.Fatalf("consumer must be nil when kafka is disabled")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", http.NoBody)
	req.Header.Set("X-Visitor-ID", "boot-visitor")
	w := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 from wired router, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestBootstrap_UnknownBackend(t *testing.T) {
	cfg := loadConfig(t, "CART_BOOT_BAD")
	cfg.Backend.Kind = "mongo"

	if _, cleanup, err := app.Bootstrap(context.Background(), cfg); err == nil {
		cleanup()
		t.Fatalf("expected error for unknown backend kind")
	}
}
