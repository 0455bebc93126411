//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_cart/internal/backend"
	backendmem "github.com/Gunvolt24/wb_cart/internal/backend/memory"
	cachemem "github.com/Gunvolt24/wb_cart/internal/cache/memory"
	"github.com/Gunvolt24/wb_cart/internal/domain"
	ikafka "github.com/Gunvolt24/wb_cart/internal/kafka"
	"github.com/Gunvolt24/wb_cart/internal/party"
	"github.com/Gunvolt24/wb_cart/internal/testutil"
	"github.com/Gunvolt24/wb_cart/internal/usecase"
	"github.com/Gunvolt24/wb_cart/pkg/logger"
	"github.com/Gunvolt24/wb_cart/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

var storefront = domain.Storefront{ShopName: "Storefront", DefaultCartName: "Default"}

// 1) Событие бэкенда убирает снимок корзины из кэша
func TestKafka_Event_InvalidatesCart_TC(t *testing.T) {
	ctx, cancel, st, kf := newStack(t)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	startConsumer(t, ctx, st, kf.Brokers, topic, group, "first")

	customerID := "cust-" + testutil.UniqSuffix()
	st.warm(t, ctx, customerID)

	writeEvent(t, ctx, kf.Brokers, topic, domain.CartInvalidationEvent{CustomerID: customerID, Reason: "price_change"})
	st.waitInvalidated(t, ctx, customerID)
}

// 2) Мусор и невалидное событие пропускаются, следующее валидное — обрабатывается
func TestKafka_Skip_Invalid_Then_Process_TC(t *testing.T) {
	ctx, cancel, st, kf := newStack(t)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-invalid-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	startConsumer(t, ctx, st, kf.Brokers, topic, group, "first")

	customerID := "cust-" + testutil.UniqSuffix()
	st.warm(t, ctx, customerID)

	writeMsg(t, ctx, kf.Brokers, topic, nil, []byte("not-a-json"))
	writeMsg(t, ctx, kf.Brokers, topic, nil, []byte(`{"reason":"no customer"}`))
	writeEvent(t, ctx, kf.Brokers, topic, domain.CartInvalidationEvent{CustomerID: customerID})

	st.waitInvalidated(t, ctx, customerID)
}

// 3) At-least-once через рестарт: временная ошибка без коммита — передоставка после перезапуска
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	ctx, cancel, st, kf := newStack(t)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	customerID := "cust-" + testutil.UniqSuffix()
	st.warm(t, ctx, customerID)
	writeEvent(t, ctx, kf.Brokers, topic, domain.CartInvalidationEvent{CustomerID: customerID})

	// Фаза 1: всегда временная ошибка => оффсет НЕ коммитится
	consumerFail := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 300 * time.Millisecond,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       300 * time.Millisecond,
	}, alwaysTempFail{}, st.log)

	runCtx1, cancelRun1 := context.WithCancel(ctx)
	go func() { _ = consumerFail.Run(runCtx1) }()
	time.Sleep(2 * time.Second)
	cancelRun1()
	_ = consumerFail.Close()

	_, ok := st.cache.Get(ctx, customerID)
	require.True(t, ok, "cart must stay cached while processing fails")

	// Фаза 2: та же группа, нормальный сервис
	startConsumer(t, ctx, st, kf.Brokers, topic, group, "first")
	st.waitInvalidated(t, ctx, customerID)
}

// -----------------функции-помощники-----------------

type stack struct {
	carts *usecase.CartService
	cache *cachemem.LRUCacheTTL
	log   *logger.ZapLogger
}

func newStack(t *testing.T) (context.Context, context.CancelFunc, *stack, *testutil.KafkaEnv) {
	t.Helper()

	// Длинный контекст — на контейнер
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "carts-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	cache := cachemem.NewLRUCacheTTL(100, time.Minute)
	commerce := backend.NewCommerce(backendmem.NewCartRepository(), backend.DefaultCatalog(""))
	parties := party.NewPipeline(backendmem.NewProfileStore(), logg)
	st := &stack{
		carts: usecase.NewCartService(commerce, cache, parties, validate.NewLineValidator(), logg),
		cache: cache,
		log:   logg,
	}

	// Короткий контекст — сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	return ctx, cancel, st, kf
}

// warm — корзина покупателя загружена и лежит в кэше.
func (s *stack) warm(t *testing.T, ctx context.Context, customerID string) {
	t.Helper()
	resp := s.carts.GetCurrentCart(ctx, storefront, domain.Visitor{ID: customerID}, false)
	require.True(t, resp.Result.Success)
	_, ok := s.cache.Get(ctx, customerID)
	require.True(t, ok)
}

func (s *stack) waitInvalidated(t *testing.T, ctx context.Context, customerID string) {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		if _, ok := s.cache.Get(ctx, customerID); !ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("cart of %s not invalidated in time", customerID)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func startConsumer(t *testing.T, ctx context.Context, st *stack, brokers []string, topic, group, offset string) {
	t.Helper()
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    offset,
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, st.carts, st.log)

	runCtx, cancelRun := context.WithCancel(ctx)
	t.Cleanup(func() {
		cancelRun()
		_ = consumer.Close()
	})
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)
}

func writeEvent(t *testing.T, ctx context.Context, brokers []string, topic string, ev domain.CartInvalidationEvent) {
	t.Helper()
	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	writeMsg(t, ctx, brokers, topic, []byte(ev.CustomerID), raw)
}

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, key, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Key: key, Value: payload}))
}

// временная "сетеподобная" ошибка
type tempNetErr struct{}

func (tempNetErr) Error() string   { return "temporary failure" }
func (tempNetErr) Temporary() bool { return true }
func (tempNetErr) Timeout() bool   { return true } // как у net.Error

type alwaysTempFail struct{}

func (alwaysTempFail) InvalidateFromMessage(context.Context, []byte) error {
	return tempNetErr{}
}
