package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/cart-store/internal/domain"
)

// stubWriter — подмена kafka.Writer для юнит-тестов.
type stubWriter struct {
	msgs     []kafka.Message
	writeErr error
	closed   int
}

func (s *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.msgs = append(s.msgs, msgs...)
	return nil
}

func (s *stubWriter) Close() error {
	s.closed++
	return nil
}

func testEvent() domain.CartEvent {
	return domain.CartEvent{
		Type:       domain.EventCartUpdated,
		UserID:     "u1",
		ItemCount:  2,
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublish_KeyedByUserID(t *testing.T) {
	sw := &stubWriter{}
	p := &Producer{writer: sw, topic: "cart-events"}

	evt := testEvent()
	if err := p.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(sw.msgs) != 1 {
		t.Fatalf("written messages = %d, want 1", len(sw.msgs))
	}
	msg := sw.msgs[0]
	if string(msg.Key) != "u1" {
		t.Fatalf("message key = %q, want %q", msg.Key, "u1")
	}

	var got domain.CartEvent
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if got != evt {
		t.Fatalf("payload = %+v, want %+v", got, evt)
	}
}

func TestPublish_WriterError(t *testing.T) {
	wantErr := errors.New("broker unavailable")
	p := &Producer{writer: &stubWriter{writeErr: wantErr}, topic: "cart-events"}

	err := p.Publish(context.Background(), testEvent())
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestClose_Idempotent(t *testing.T) {
	sw := &stubWriter{}
	p := &Producer{writer: sw, topic: "cart-events"}

	if err := p.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if sw.closed != 1 {
		t.Fatalf("writer closed %d times, want 1", sw.closed)
	}
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	if err := p.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("NopPublisher.Publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("NopPublisher.Close: %v", err)
	}
}
