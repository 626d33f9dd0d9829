package ws

import (
	"testing"
	"time"

	"backend/entity"
)

func TestOrderStatusChangedNeverBlocks(t *testing.T) {
	h := NewOrderHub(nil)
	// No Run loop draining the queue: once the buffer fills, updates must be
	// dropped instead of hanging the caller.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			h.OrderStatusChanged(&entity.Order{Status: entity.StatusConfirmed})
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("OrderStatusChanged blocked")
	}
}

func TestHubTracksSubscriptions(t *testing.T) {
	h := NewOrderHub(nil)
	go h.Run()

	h.register <- Subscription{OrderID: 7}
	h.register <- Subscription{OrderID: 8}
	// register is unbuffered: a third send completing proves the first two
	// were fully processed
	h.register <- Subscription{OrderID: 9}

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients[7]) != 1 || len(h.clients[8]) != 1 {
		t.Errorf("clients = %v, want one watcher per order", h.clients)
	}
}
