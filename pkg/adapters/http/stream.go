package http

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/navstack/internal/logging"
	"github.com/aretw0/navstack/pkg/domain"
)

// allKeys is the subscription key that receives every controller's events.
const allKeys = ""

// Event is the JSON payload pushed to SSE subscribers.
type Event struct {
	Key   string `json:"key"`
	Type  string `json:"type"` // "transition" or "lifecycle"
	Kind  string `json:"kind,omitempty"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Depth int    `json:"depth,omitempty"`
}

// StreamManager fans controller events out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan string]struct{}
	logger      *slog.Logger
}

// NewStreamManager creates an empty manager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[string]map[chan string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a listener for key ("" for every key).
// The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(key string) (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[key]; !ok {
		sm.subscribers[key] = make(map[chan string]struct{})
	}
	sm.subscribers[key][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[key]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, key)
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (sm *StreamManager) Subscribers() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	n := 0
	for _, subs := range sm.subscribers {
		n += len(subs)
	}
	return n
}

// Broadcast sends ev to the subscribers of its key and to the catch-all ones.
// Slow subscribers lose messages rather than block the controller.
func (sm *StreamManager) Broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		sm.logger.Error("SSE: encode failed", "error", err)
		return
	}
	msg := string(data)

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	targets := []string{allKeys}
	if ev.Key != allKeys {
		targets = append(targets, ev.Key)
	}
	for _, k := range targets {
		for ch := range sm.subscribers[k] {
			select {
			case ch <- msg:
			default:
				sm.logger.Warn("SSE: client buffer full, dropping message", "key", ev.Key)
			}
		}
	}
}

// Hooks returns controller hooks publishing the controller's events under key.
func (sm *StreamManager) Hooks(key string) domain.Hooks {
	return domain.Hooks{
		OnTransition: func(e domain.TransitionEvent) {
			ev := Event{Key: key, Type: "transition", Kind: string(e.Kind), Depth: e.Depth}
			if e.From != nil {
				ev.From = e.From.Name()
			}
			if e.To != nil {
				ev.To = e.To.Name()
			}
			sm.Broadcast(ev)
		},
		OnLifecycle: func(ch domain.LifecycleChange) {
			sm.Broadcast(Event{Key: key, Type: "lifecycle", From: string(ch.From), To: string(ch.To)})
		},
	}
}
