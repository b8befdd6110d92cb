package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/cart-store/internal/domain"
	"github.com/Gunvolt24/cart-store/internal/ports"
	"github.com/Gunvolt24/cart-store/internal/resilience"
	"github.com/Gunvolt24/cart-store/pkg/metrics"
)

// ErrInvalidInput — некорректные аргументы вызова (пустой идентификатор,
// неположительное количество). Единственная наблюдаемая ошибка сервиса:
// недоступность удалённого кэша наружу не выходит.
var ErrInvalidInput = errors.New("invalid input")

// CartService — операции над корзинами поверх удалённого байтового кэша.
// Каждое обращение к удалённому кэшу идёт через политику повторов и breaker;
// при исчерпании политики операция обслуживается из локального fallback-кэша
// и всё равно завершается успешно.
type CartService struct {
	remote   ports.RemoteCache
	codec    ports.CartCodec
	fallback ports.FallbackCache
	policy   *resilience.Policy
	events   ports.EventPublisher
	log      ports.Logger
	locks    keyLock
}

var _ ports.CartStore = (*CartService)(nil)

func NewCartService(
	remote ports.RemoteCache,
	codec ports.CartCodec,
	fallback ports.FallbackCache,
	policy *resilience.Policy,
	events ports.EventPublisher,
	log ports.Logger,
) *CartService {
	return &CartService{
		remote:   remote,
		codec:    codec,
		fallback: fallback,
		policy:   policy,
		events:   events,
		log:      log,
	}
}

// AddItem — добавляет товар в корзину пользователя (read-modify-write).
// Существующая позиция увеличивается на quantity, новая — дописывается в конец.
// При недоступности удалённого кэша слияние выполняется в fallback-копии.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int32) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	if productID == "" {
		return fmt.Errorf("%w: empty product id", ErrInvalidInput)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, quantity)
	}

	mu := s.locks.of(userID)
	mu.Lock()
	defer mu.Unlock()

	var merged *domain.Cart
	err := s.policy.Execute(ctx, "add_item", func() error {
		raw, found, err := s.remote.Get(ctx, userID)
		if err != nil {
			return err
		}
		cart := domain.NewCart(userID)
		if found {
			decoded, derr := s.codec.Decode(raw)
			if derr != nil {
				// повреждённая запись приравнивается к отказу удалённого кэша
				return fmt.Errorf("decode cart: %w", derr)
			}
			cart = decoded
		}
		cart.AddItem(productID, quantity)

		encoded, eerr := s.codec.Encode(cart)
		if eerr != nil {
			return fmt.Errorf("encode cart: %w", eerr)
		}
		if err := s.remote.Set(ctx, userID, encoded); err != nil {
			return err
		}
		merged = cart
		return nil
	})

	if err != nil {
		metrics.FallbackEngaged.WithLabelValues("add_item").Inc()
		s.log.Warnf(ctx, "add_item: remote cache exhausted for user=%s, merging into fallback: %v", userID, err)

		cart, ok := s.fallback.Get(ctx, userID)
		if !ok {
			cart = domain.NewCart(userID)
		}
		cart.AddItem(productID, quantity)
		merged = cart
	}

	_ = s.fallback.Set(ctx, merged)
	metrics.CartOps.WithLabelValues("add_item").Inc()
	s.publish(ctx, domain.EventCartUpdated, merged)
	return nil
}

// EmptyCart — очищает корзину пользователя. Пустая запись пишется и в удалённый
// кэш, и в fallback: даже при отказе удалённого кэша пользователь видит пустую корзину.
func (s *CartService) EmptyCart(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	mu := s.locks.of(userID)
	mu.Lock()
	defer mu.Unlock()

	empty := domain.NewCart(userID)
	err := s.policy.Execute(ctx, "empty_cart", func() error {
		encoded, eerr := s.codec.Encode(empty)
		if eerr != nil {
			return fmt.Errorf("encode cart: %w", eerr)
		}
		return s.remote.Set(ctx, userID, encoded)
	})
	if err != nil {
		metrics.FallbackEngaged.WithLabelValues("empty_cart").Inc()
		s.log.Warnf(ctx, "empty_cart: remote cache exhausted for user=%s, clearing fallback copy only: %v", userID, err)
	}

	_ = s.fallback.Set(ctx, empty)
	metrics.CartOps.WithLabelValues("empty_cart").Inc()
	s.publish(ctx, domain.EventCartEmptied, empty)
	return nil
}

// GetCart — возвращает корзину пользователя. Отсутствующая запись неотличима
// от пустой корзины. Успешное чтение освежает fallback-копию; при исчерпании
// политики отдаётся fallback-копия либо пустая корзина.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	var cart *domain.Cart
	err := s.policy.Execute(ctx, "get_cart", func() error {
		raw, found, err := s.remote.Get(ctx, userID)
		if err != nil {
			return err
		}
		if !found {
			cart = nil
			return nil
		}
		decoded, derr := s.codec.Decode(raw)
		if derr != nil {
			return fmt.Errorf("decode cart: %w", derr)
		}
		cart = decoded
		return nil
	})

	metrics.CartOps.WithLabelValues("get_cart").Inc()

	if err == nil {
		if cart == nil {
			return domain.NewCart(userID), nil
		}
		_ = s.fallback.Set(ctx, cart)
		return cart, nil
	}

	metrics.FallbackEngaged.WithLabelValues("get_cart").Inc()
	s.log.Warnf(ctx, "get_cart: remote cache exhausted for user=%s, serving fallback: %v", userID, err)

	if cached, ok := s.fallback.Get(ctx, userID); ok {
		return cached, nil
	}
	return domain.NewCart(userID), nil
}

// Ping — проверка живости сервиса. Никогда не паникует наружу: сервис остаётся
// доступен и при мёртвом удалённом кэше, поэтому его отказ лишь логируется.
func (s *CartService) Ping(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf(ctx, "ping: panic recovered: %v", r)
			ok = false
		}
	}()

	if err := s.remote.Ping(ctx); err != nil {
		s.log.Warnf(ctx, "ping: remote cache unavailable: %v", err)
	}
	return true
}

func (s *CartService) publish(ctx context.Context, eventType string, cart *domain.Cart) {
	evt := domain.CartEvent{
		Type:       eventType,
		UserID:     cart.UserID,
		ItemCount:  len(cart.Items),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warnf(ctx, "publish %s for user=%s: %v", eventType, cart.UserID, err)
	}
}
