package events

import (
	"fmt"
	"sync"
)

// Kind is the closed set of notifications a store publishes.
type Kind int

const (
	// Saved follows a successful write. Location is set.
	Saved Kind = iota + 1
	// Error follows any failed load or save. Err is set.
	Error
	// RecordAdded follows the save step of Add. Key and Value are set.
	RecordAdded
	// RecordDeleted follows the save step of Delete for an existing key. Key is set.
	RecordDeleted
	// DatabaseCleared follows Clear.
	DatabaseCleared
)

// Kinds lists every Kind in declaration order.
var Kinds = []Kind{Saved, Error, RecordAdded, RecordDeleted, DatabaseCleared}

func (k Kind) String() string {
	switch k {
	case Saved:
		return "saved"
	case Error:
		return "error"
	case RecordAdded:
		return "recordAdded"
	case RecordDeleted:
		return "recordDeleted"
	case DatabaseCleared:
		return "databaseCleared"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one notification. Only the fields documented for its Kind are set.
type Event struct {
	Kind     Kind
	Location string
	Err      error
	Key      string
	Value    any
}

// Handler receives events.
type Handler func(Event)

// Bus dispatches events to subscribers. The zero value is ready to use and it
// is safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler
}

// Subscribe registers h for kind.
func (b *Bus) Subscribe(kind Kind, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers == nil {
		b.handlers = make(map[Kind][]Handler)
	}
	b.handlers[kind] = append(b.handlers[kind], h)
}

// SubscribeAll registers h for every kind.
func (b *Bus) SubscribeAll(h Handler) {
	for _, k := range Kinds {
		b.Subscribe(k, h)
	}
}

// Publish invokes the handlers registered for e.Kind in registration order.
// Handlers may subscribe further handlers; those see later events only.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	hs := b.handlers[e.Kind]
	b.mu.RUnlock()
	for _, h := range hs {
		h(e)
	}
}

// Count returns the number of handlers registered for kind.
func (b *Bus) Count(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[kind])
}
