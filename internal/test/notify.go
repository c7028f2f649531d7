package test

import (
	"context"
	"sync"

	"github.com/polkiloo/foodstall/internal/domain/model"
)

// NotifierStub records events and returns Err.
type NotifierStub struct {
	Err error

	mu     sync.Mutex
	events []model.OrderEvent
}

// Notify stores event.
func (n *NotifierStub) Notify(_ context.Context, event model.OrderEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.Err
}

// Events returns a copy of recorded events.
func (n *NotifierStub) Events() []model.OrderEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.OrderEvent(nil), n.events...)
}
