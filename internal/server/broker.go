package server

import (
	"encoding/json"
	"sync"
)

// Event is the payload pushed to SSE subscribers. Scoreboard-relevant
// changes (first completions, admin resets) are broadcast to every
// connected team.
type Event struct {
	Type   string `json:"type"`
	Clue   string `json:"clue,omitempty"`
	Team   string `json:"team,omitempty"`
	Points int    `json:"points,omitempty"`
}

// Broker is an in-process pub/sub for SSE events.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish sends an event to every subscriber.
func (b *Broker) Publish(event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
