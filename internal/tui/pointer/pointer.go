// Package pointer fans terminal mouse events out to scoped subscribers.
//
// The host program publishes every tea.MouseMsg it receives; components
// subscribe while mounted to observe presses that land outside their own
// bounds. Handlers run synchronously on the caller's goroutine, which in a
// Bubble Tea program is the Update loop.
package pointer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler observes a pointer event and may return a command for the program.
type Handler func(tea.MouseMsg) tea.Cmd

// Broadcaster delivers pointer events to subscribers in subscription order.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID uint64
	order  []uint64
	subs   map[uint64]subscriber
}

type subscriber struct {
	owner   string
	handler Handler
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[uint64]subscriber)}
}

// Subscribe registers handler on behalf of owner. The returned subscription
// must be closed to stop delivery.
func (b *Broadcaster) Subscribe(owner string, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[id] = subscriber{owner: owner, handler: handler}
	b.order = append(b.order, id)

	return &Subscription{broadcaster: b, id: id, owner: owner}
}

// Publish delivers msg to every current subscriber and batches the
// commands they return. Subscriptions closed by a handler during delivery
// do not receive the event if they have not been reached yet.
func (b *Broadcaster) Publish(msg tea.MouseMsg) tea.Cmd {
	b.mu.RLock()
	ids := make([]uint64, len(b.order))
	copy(ids, b.order)
	b.mu.RUnlock()

	var cmds []tea.Cmd
	for _, id := range ids {
		b.mu.RLock()
		sub, ok := b.subs[id]
		b.mu.RUnlock()
		if !ok || sub.handler == nil {
			continue
		}
		if cmd := sub.handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return tea.Batch(cmds...)
}

// Len reports the number of live subscriptions.
func (b *Broadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Owners lists the owners of live subscriptions in subscription order.
func (b *Broadcaster) Owners() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	owners := make([]string, 0, len(b.order))
	for _, id := range b.order {
		owners = append(owners, b.subs[id].owner)
	}
	return owners
}

func (b *Broadcaster) remove(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[id]; !ok {
		return false
	}
	delete(b.subs, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Subscription is a handle on one registration.
type Subscription struct {
	broadcaster *Broadcaster
	id          uint64
	owner       string
	once        sync.Once
}

// Owner returns the owner the subscription was created for.
func (s *Subscription) Owner() string {
	return s.owner
}

// Close stops delivery. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.broadcaster.remove(s.id)
	})
}
