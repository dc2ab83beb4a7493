// Package event provides the synchronous publish/subscribe bus the engine
// uses to notify renderers and application code without holding references
// to them.
//
// Dispatch is deliberately synchronous: the engine runs under the host's
// run-to-completion event loop, so handlers execute on the publisher's
// goroutine in subscription order and there is nothing to synchronize
// inside the core. The subscription registry itself is mutex-guarded so
// hosts may subscribe from setup code while another goroutine drives the
// simulation.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Topic names an event stream on the bus.
type Topic string

// Topics emitted by the engine.
const (
	TopicNodeDrag                 Topic = "node_drag"
	TopicPan                      Topic = "pan"
	TopicZoom                     Topic = "zoom"
	TopicFiltered                 Topic = "filtered"
	TopicFilterReset              Topic = "filter_reset"
	TopicNodeDoubleActivate       Topic = "node_double_activate"
	TopicBackgroundDoubleActivate Topic = "background_double_activate"
)

// Handler receives the payload published on a topic. Payload types are
// the structs in payload.go, one per topic.
type Handler func(payload any)

// Token identifies a subscription for later removal.
type Token string

type subscription struct {
	token   Token
	handler Handler
}

// Bus is a topic-keyed publish/subscribe registry.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers a handler for a topic and returns a token for
// Unsubscribe. Handlers fire in subscription order.
func (b *Bus) Subscribe(topic Topic, h Handler) Token {
	token := Token(uuid.NewString())
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], subscription{token: token, handler: h})
	b.mu.Unlock()
	return token
}

// Unsubscribe removes the subscription identified by token.
// Returns false if the token is unknown (already removed is fine).
func (b *Bus) Unsubscribe(token Token) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for topic, subs := range b.subs {
		for i, s := range subs {
			if s.token == token {
				b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Publish delivers payload to every handler subscribed to topic,
// synchronously, on the caller's goroutine.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	subs := b.subs[topic]
	b.mu.RUnlock()
	for _, s := range subs {
		s.handler(payload)
	}
}
