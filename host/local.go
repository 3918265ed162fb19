package host

import (
	"context"
	"sync"
)

type subscription struct {
	key int
	fn  Listener
}

// Local is an in-process bridge. Events are published by the owner and
// delivered synchronously on the publishing goroutine, in subscription order.
// It is the test double for a real host and the base of the other bridges.
type Local struct {
	mu      sync.Mutex
	subs    map[string][]subscription
	sent    map[string][]byte
	nextKey int
	closed  bool
}

func NewLocal() *Local {
	return &Local{
		subs: make(map[string][]subscription),
		sent: make(map[string][]byte),
	}
}

func (l *Local) Init() error {
	return nil
}

func (l *Local) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	l.subs = make(map[string][]subscription)

	return nil
}

func (l *Local) Subscribe(id string, fn Listener) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || fn == nil {
		return func() {}
	}

	l.nextKey++
	key := l.nextKey
	l.subs[id] = append(l.subs[id], subscription{key: key, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.unsubscribe(id, key) })
	}
}

func (l *Local) unsubscribe(id string, key int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	subs := l.subs[id]
	for idx := range subs {
		if subs[idx].key == key {
			l.subs[id] = append(subs[:idx:idx], subs[idx+1:]...)
			return
		}
	}
}

// Subscribers returns the number of listeners on id.
func (l *Local) Subscribers(id string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.subs[id])
}

// Publish delivers a host-originated event to every subscriber of id.
func (l *Local) Publish(id string, payload []byte) error {
	l.mu.Lock()

	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}

	subs := make([]subscription, len(l.subs[id]))
	copy(subs, l.subs[id])

	l.mu.Unlock()

	for _, sub := range subs {
		sub.fn(payload)
	}

	return nil
}

// Send records the latest UI-originated value for id.
func (l *Local) Send(id string, payload []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	l.sent[id] = payload

	return nil
}

// Sent returns the last value sent for id.
func (l *Local) Sent(id string) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	payload, ok := l.sent[id]
	return payload, ok
}

// Run blocks until ctx is done.
func (l *Local) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
