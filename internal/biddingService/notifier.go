package bidding

import (
	"sync"
	"time"

	"sneaker-auction/internal/metrics"
	model "sneaker-auction/internal/models"
	"sneaker-auction/utils"
)

// LotsChangedEvent announces that a lot was modified
type LotsChangedEvent struct {
	LotID model.ID  `json:"lot_id"`
	Lot   model.Lot `json:"lot"`
	At    time.Time `json:"at"`
}

// ChangeNotifier receives "lots changed" notifications
type ChangeNotifier interface {
	NotifyLotsChanged(event LotsChangedEvent)
}

// Broadcaster fans lot change events out to subscribers. Slow subscribers miss events instead of blocking bidders.
type Broadcaster struct {
	mu      sync.RWMutex
	subs    map[chan LotsChangedEvent]struct{}
	metrics *metrics.Metrics
}

// NewBroadcaster creates a Broadcaster; m may be nil
func NewBroadcaster(m *metrics.Metrics) *Broadcaster {
	return &Broadcaster{
		subs:    make(map[chan LotsChangedEvent]struct{}),
		metrics: m,
	}
}

// Subscribe returns a channel of events and a func that closes it
func (b *Broadcaster) Subscribe(buffer int) (<-chan LotsChangedEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan LotsChangedEvent, buffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// NotifyLotsChanged publishes event to every subscriber without blocking
func (b *Broadcaster) NotifyLotsChanged(event LotsChangedEvent) {
	b.metrics.ObserveLotsChanged()

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			utils.Debug("lots changed event dropped for slow subscriber", map[string]any{"lot_id": event.LotID})
		}
	}
}
