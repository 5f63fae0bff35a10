// Package events delivers content-change notifications to in-process
// subscribers. Saves broadcast the full document; page-scoped subscribers are
// only invoked when the published document actually carries their page, so a
// partial payload can never feed a subscriber an absent page.
package events

import (
	"sync"

	"github.com/alphire-robotics/team-cms/internal/document"
)

// ContentUpdated announces that the stored content document changed. Document
// is the full tree after the change; Revision is the persisted revision
// counter it was saved under.
type ContentUpdated struct {
	Document document.Document
	Revision int64
}

// Handler receives a content-change notification. Delivery is synchronous on
// the publishing goroutine.
type Handler func(ContentUpdated)

// PageHandler receives the updated slice of a single page.
type PageHandler func(page document.Page, event ContentUpdated)

type subscriber struct {
	id      int64
	page    string
	handler Handler
	scoped  PageHandler
}

// Bus is a synchronous in-process publish/subscribe hub. The zero value is
// not usable; call NewBus.
type Bus struct {
	mu          sync.RWMutex
	nextID      int64
	subscribers []subscriber
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for every content update. The returned
// function removes the subscription.
func (b *Bus) Subscribe(handler Handler) func() {
	return b.add(subscriber{handler: handler})
}

// SubscribePage registers a handler scoped to one page key. The handler runs
// only when the published document contains that page; updates that omit the
// page are skipped rather than delivered with a nil slice.
func (b *Bus) SubscribePage(page string, handler PageHandler) func() {
	return b.add(subscriber{page: page, scoped: handler})
}

func (b *Bus) add(sub subscriber) func() {
	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subscribers = append(b.subscribers, sub)
	b.mu.Unlock()

	id := sub.id
	return func() { b.remove(id) }
}

func (b *Bus) remove(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subscribers {
		if sub.id == id {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every matching subscriber, in subscription
// order, on the calling goroutine. Each subscriber gets its own clone of the
// document so a misbehaving handler cannot corrupt what later subscribers or
// the publisher see.
func (b *Bus) Publish(event ContentUpdated) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, sub := range subs {
		if sub.scoped != nil {
			page, ok := event.Document[sub.page]
			if !ok {
				continue
			}
			sub.scoped(page.Clone(), ContentUpdated{
				Document: event.Document.Clone(),
				Revision: event.Revision,
			})
			continue
		}
		sub.handler(ContentUpdated{
			Document: event.Document.Clone(),
			Revision: event.Revision,
		})
	}
}
