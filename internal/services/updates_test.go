package services_test

import (
	"testing"
	"time"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

func TestUpdateBusDelivery(t *testing.T) {
	bus := services.NewUpdateBus()

	ch := bus.Subscribe()
	defer bus.Unsubscribe(ch)

	bus.Publish("00000001")

	select {
	case uid := <-ch:
		if uid != "00000001" {
			t.Errorf("Expected uid 00000001, got %s", uid)
		}
	case <-time.After(time.Second):
		t.Fatal("Publish should reach the subscriber")
	}
}

func TestUpdateBusUnsubscribe(t *testing.T) {
	bus := services.NewUpdateBus()

	ch := bus.Subscribe()
	bus.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("Unsubscribed channel should be closed")
	}

	// Publishing after unsubscribe must not panic.
	bus.Publish("00000001")
}

func TestUpdateBusSlowSubscriberDropsSignal(t *testing.T) {
	bus := services.NewUpdateBus()

	ch := bus.Subscribe()
	defer bus.Unsubscribe(ch)

	// Overflow the buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish("00000001")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// The subscriber still observes at least one signal.
	select {
	case <-ch:
	default:
		t.Error("Subscriber should have at least one buffered signal")
	}
}
