package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"

	model "sneaker-auction/internal/models"
	"sneaker-auction/internal/repository"
)

// ErrViewClosed is returned by Load when the view was closed before the lot arrived
var ErrViewClosed = errors.New("lot view closed")

// LotView is the locally observed state of a single lot. Optimistic bids are
// applied to it before the remote store confirms them and rolled back on failure.
type LotView struct {
	mu      sync.Mutex
	lot     model.Lot
	loaded  bool
	closed  bool
	version uint64
	loadSeq uint64
	subs    map[int]func(model.Lot)
	nextSub int
}

// NewLotView creates an empty view
func NewLotView() *LotView {
	return &LotView{subs: make(map[int]func(model.Lot))}
}

// Load fetches the lot and publishes it to the view. A response that arrives
// after ctx is done, after Close, or after a newer Load started is dropped.
func (v *LotView) Load(ctx context.Context, repo repository.LotRepository, lotID model.ID) error {
	v.mu.Lock()
	v.loadSeq++
	seq := v.loadSeq
	v.mu.Unlock()

	lot, err := repo.GetLot(ctx, lotID)
	if err != nil {
		return fmt.Errorf("load lot %s: %w", lotID, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	if seq != v.loadSeq {
		v.mu.Unlock()
		return nil
	}
	subs := v.storeLocked(lot)
	v.mu.Unlock()

	notify(subs, lot)
	return nil
}

// Current returns a copy of the lot, or false if nothing has been loaded
func (v *LotView) Current() (model.Lot, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return model.Lot{}, false
	}
	return v.lot.Clone(), true
}

// Set replaces the observed lot and returns the new version. Closed views ignore it.
func (v *LotView) Set(lot model.Lot) uint64 {
	v.mu.Lock()
	if v.closed {
		ver := v.version
		v.mu.Unlock()
		return ver
	}
	subs := v.storeLocked(lot)
	ver := v.version
	v.mu.Unlock()

	notify(subs, lot)
	return ver
}

// restore puts prev back, but only if nothing replaced the state written at version
func (v *LotView) restore(prev model.Lot, version uint64) bool {
	v.mu.Lock()
	if v.closed || v.version != version {
		v.mu.Unlock()
		return false
	}
	subs := v.storeLocked(prev)
	v.mu.Unlock()

	notify(subs, prev)
	return true
}

// Subscribe registers fn for every state change. The returned func unsubscribes.
func (v *LotView) Subscribe(fn func(model.Lot)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextSub
	v.nextSub++
	v.subs[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

// Close detaches the view: pending loads are discarded and subscribers dropped
func (v *LotView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.subs = make(map[int]func(model.Lot))
}

func (v *LotView) storeLocked(lot model.Lot) []func(model.Lot) {
	v.lot = lot.Clone()
	v.loaded = true
	v.version++

	subs := make([]func(model.Lot), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(model.Lot), lot model.Lot) {
	for _, fn := range subs {
		fn(lot.Clone())
	}
}
