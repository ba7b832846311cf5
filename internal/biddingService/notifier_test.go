package bidding

import (
	"sync"
	"testing"

	model "sneaker-auction/internal/models"

	"github.com/stretchr/testify/require"
)

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster(nil)

	a, cancelA := b.Subscribe(2)
	c, cancelC := b.Subscribe(1)

	b.NotifyLotsChanged(LotsChangedEvent{LotID: "lot1"})
	b.NotifyLotsChanged(LotsChangedEvent{LotID: "lot2"})

	require.Equal(t, model.ID("lot1"), (<-a).LotID)
	require.Equal(t, model.ID("lot2"), (<-a).LotID)

	// c has room for one event; the second was dropped instead of blocking
	require.Equal(t, model.ID("lot1"), (<-c).LotID)
	require.Empty(t, c)

	cancelA()
	cancelA()
	_, open := <-a
	require.False(t, open)

	b.NotifyLotsChanged(LotsChangedEvent{LotID: "lot3"})
	require.Equal(t, model.ID("lot3"), (<-c).LotID)
	cancelC()
}

func TestBroadcaster_ConcurrentNotify(t *testing.T) {
	b := NewBroadcaster(nil)
	ch, cancel := b.Subscribe(100)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.NotifyLotsChanged(LotsChangedEvent{LotID: "lot1"})
		}()
	}
	wg.Wait()

	require.Len(t, ch, 50)
}
