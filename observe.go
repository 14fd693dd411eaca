package main

import "sync"

// broadcaster fans the latest value of T out to subscribers. Each subscriber
// holds at most one pending value; a newer publish replaces an unread one, so
// a slow reader skips intermediate values but never blocks the writer.
type broadcaster[T any] struct {
	mu     sync.Mutex
	latest T
	subs   map[int]chan T
	nextID int
	closed bool
}

func newBroadcaster[T any](initial T) *broadcaster[T] {
	return &broadcaster[T]{latest: initial, subs: make(map[int]chan T)}
}

func (b *broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.latest = v
	for _, ch := range b.subs {
		offerLatest(ch, v)
	}
}

func (b *broadcaster[T]) Latest() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

// Subscribe returns a channel primed with the current value and a cancel
// func that closes it.
func (b *broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan T, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	ch <- b.latest
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
}

func (b *broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// offerLatest replaces any unread value in ch with v. Callers hold the
// broadcaster lock, so there is a single sender per channel.
func offerLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
