package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_cart/config"
	"github.com/Gunvolt24/wb_cart/internal/backend"
	backendmem "github.com/Gunvolt24/wb_cart/internal/backend/memory"
	cachemem "github.com/Gunvolt24/wb_cart/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/wb_cart/internal/cache/redis"
	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/kafka"
	"github.com/Gunvolt24/wb_cart/internal/party"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/internal/repo/postgres"
	rest "github.com/Gunvolt24/wb_cart/internal/transport/http"
	"github.com/Gunvolt24/wb_cart/internal/usecase"
	"github.com/Gunvolt24/wb_cart/pkg/logger"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
	"github.com/Gunvolt24/wb_cart/pkg/telemetry"
	"github.com/Gunvolt24/wb_cart/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер событий инвалидации; nil — выключен
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// cleanupStack — функции освобождения, выполняются в обратном порядке.
type cleanupStack []func()

func (s *cleanupStack) push(fn func()) { *s = append(*s, fn) }

func (s cleanupStack) run() {
	for i := len(s) - 1; i >= 0; i-- {
		s[i]()
	}
}

// storage — хранилища коммерческого бэкенда.
type storage struct {
	carts    ports.CartRepository
	profiles ports.ProfileStore
}

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// openStorage — memory или postgres по Backend.Kind.
func openStorage(ctx context.Context, cfg *config.Config, cleanups *cleanupStack) (storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend.Kind)) {
	case "", "memory":
		return storage{carts: backendmem.NewCartRepository(), profiles: backendmem.NewProfileStore()}, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return storage{}, fmt.Errorf("postgres pool: %w", err)
		}
		cleanups.push(pool.Close)
		return storage{carts: postgres.NewCartRepository(pool), profiles: postgres.NewProfileStore(pool)}, nil
	default:
		return storage{}, fmt.Errorf("unknown backend kind %q", cfg.Backend.Kind)
	}
}

// openCache — in-memory LRU+TTL или Redis по Cache.Backend.
func openCache(ctx context.Context, cfg *config.Config, log ports.Logger, cleanups *cleanupStack) (ports.CartCache, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", "memory":
		return cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL), nil
	case "redis":
		client, err := cacheredis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		cleanups.push(func() {
			if cErr := client.Close(); cErr != nil {
				log.Warnf(ctx, "redis close: %v", cErr)
			}
		})
		return cacheredis.NewCartCache(client, cfg.Cache.TTL, log), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	var cleanups cleanupStack
	cleanups.push(func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	})
	fail := func(err error) (*App, Cleanup, error) {
		logg.Errorf(ctx, "bootstrap: %v", err)
		cleanups.run()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Хранилища бэкенда и кэш корзин.
	store, err := openStorage(ctx, cfg, &cleanups)
	if err != nil {
		return fail(err)
	}
	cartCache, err := openCache(ctx, cfg, logg, &cleanups)
	if err != nil {
		return fail(err)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			cleanups.push(func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	// Сборка зависимостей доменного слоя.
	storefront := domain.Storefront{
		ShopName:          cfg.Storefront.ShopName,
		DefaultCartName:   cfg.Storefront.DefaultCartName,
		GiftCardProductID: cfg.Storefront.GiftCardProductID,
		DefaultCurrency:   cfg.Storefront.DefaultCurrency,
	}
	commerce := backend.NewCommerce(store.carts, backend.DefaultCatalog(storefront.GiftCardProductID))
	parties := party.NewPipeline(store.profiles, logg)
	lineValidator := validate.NewLineValidator()

	cartService := usecase.NewCartService(commerce, cartCache, parties, lineValidator, logg)
	checkoutService := usecase.NewCheckoutService(cartService, commerce, parties, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartService, checkoutService, lineValidator, storefront, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Конфигурация и создание консьюмера Kafka.
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer := kafka.NewConsumer(&kafkaCfg, cartService, logg)
		app.KafkaConsumer = consumer
		cleanups.push(func() {
			if cErr := consumer.Close(); cErr != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", cErr)
			}
		})
	} else {
		logg.Infof(ctx, "kafka consumer disabled, cache relies on TTL and local invalidation")
	}

	logg.Infof(ctx, "bootstrap done backend=%s cache=%s shop=%s", cfg.Backend.Kind, cfg.Cache.Backend, storefront.ShopName)
	return app, Cleanup(cleanups.run), nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
