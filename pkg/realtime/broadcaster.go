package realtime

import "sync"

// Event names a part of the game that changed. Subscribers re-render the
// matching fragment.
type Event string

const (
	EventPlayers Event = "players"
	EventRounds  Event = "rounds"
	EventBoard   Event = "board"
	EventReset   Event = "reset"
)

// subscriberBuffer bounds how far a subscriber may lag before events drop.
const subscriberBuffer = 16

// Broadcaster fans change events out to SSE subscribers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its event channel.
func (b *Broadcaster) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel. Unknown channels
// are ignored.
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Subscribers reports how many subscribers are registered.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Publish delivers an event to all subscribers.
func (b *Broadcaster) Publish(event Event) {
	b.PublishAll(event)
}

// PublishAll delivers events in order to every subscriber.
func (b *Broadcaster) PublishAll(events ...Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		for _, event := range events {
			select {
			case ch <- event:
			default:
				// Lagging subscriber; the next event re-renders from current state.
			}
		}
	}
}
