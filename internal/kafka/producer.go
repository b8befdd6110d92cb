package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/cart-store/internal/domain"
	"github.com/Gunvolt24/cart-store/internal/ports"
	"github.com/Gunvolt24/cart-store/pkg/metrics"
)

// Проверка, что Producer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.EventPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProducerConfig — параметры издателя событий корзины.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Producer — обёртка над kafka.Writer. Сообщения ключуются user_id,
// чтобы события одной корзины попадали в одну партицию и сохраняли порядок.
type Producer struct {
	writer    writer
	topic     string
	closeOnce sync.Once
}

// NewProducer — конструктор. RequireOne: подтверждение лидера достаточно,
// события корзины не критичны к потере при смене лидера.
func NewProducer(cfg *ProducerConfig) *Producer {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: wt,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &Producer{writer: w, topic: cfg.Topic}
}

// Publish — отправляет событие корзины в брокер.
// Ошибка отдаётся вызывающему: решение "операция важнее события" принимает он.
func (p *Producer) Publish(ctx context.Context, evt domain.CartEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(evt.Type, "error").Inc()
		return fmt.Errorf("marshal cart event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.UserID),
		Value: payload,
		Time:  evt.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues(evt.Type, "error").Inc()
		return fmt.Errorf("write cart event to %s: %w", p.topic, err)
	}

	metrics.EventsPublished.WithLabelValues(evt.Type, "ok").Inc()
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// NopPublisher — заглушка издателя для запуска без брокера.
type NopPublisher struct{}

var _ ports.EventPublisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, domain.CartEvent) error { return nil }
func (NopPublisher) Close() error                                    { return nil }
