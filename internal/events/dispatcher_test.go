package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	var got []EventType
	d.Subscribe(EventGarcomChamado, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})
	d.Subscribe(EventSessaoAberta, func(_ context.Context, e Event) error {
		t.Error("handler for another event type was invoked")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventGarcomChamado}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if len(got) != 1 || got[0] != EventGarcomChamado {
		t.Fatalf("handled events = %v, want [garcom_chamado]", got)
	}
}

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventSessaoFechada, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventSessaoFechada, func(context.Context, Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventSessaoFechada}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if !second {
		t.Fatal("second handler was not invoked after the first failed")
	}
}

func TestSubscribeAllRegistersForEveryType(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	var count int
	d.SubscribeAll(func(context.Context, Event) error {
		count++
		return nil
	}, EventPedidoLancado, EventPedidoCancelado)

	_ = d.Publish(context.Background(), Event{Type: EventPedidoLancado})
	_ = d.Publish(context.Background(), Event{Type: EventPedidoCancelado})
	_ = d.Publish(context.Background(), Event{Type: EventCardapioAtualizado})

	if count != 2 {
		t.Fatalf("handler invoked %d times, want 2", count)
	}
}
