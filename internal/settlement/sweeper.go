package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sneaker-auction/internal/biddingerrors"
	"sneaker-auction/internal/metrics"
	model "sneaker-auction/internal/models"
	"sneaker-auction/internal/repository"
	"sneaker-auction/utils"
)

// ErrStopped is returned when starting a sweeper that was already stopped.
var ErrStopped = errors.New("sweeper stopped")

// Config holds sweeper configuration.
type Config struct {
	Interval time.Duration // Full sweep interval (default: 60s)
	Timeout  time.Duration // Per remote call timeout (default: 10s)
}

// DefaultConfig returns the observed production settings.
func DefaultConfig() Config {
	return Config{
		Interval: 60 * time.Second,
		Timeout:  10 * time.Second,
	}
}

// Outcome describes what Settle did with a lot.
type Outcome string

const (
	OutcomeIssued           Outcome = metrics.SettlementIssued
	OutcomeDuplicate        Outcome = metrics.SettlementDuplicate
	OutcomeNoBids           Outcome = metrics.SettlementNoBids
	OutcomeAlreadyIssued    Outcome = metrics.SettlementAlreadyIssued
	OutcomeAlreadyProcessed Outcome = "already_processed"
	OutcomeFailed           Outcome = metrics.SettlementIssuanceFailed
)

// Report summarises one sweep.
type Report struct {
	Lots          int `json:"lots"`
	Settled       int `json:"settled"`
	AlreadyIssued int `json:"already_issued"`
	Skipped       int `json:"skipped"`
	NoBids        int `json:"no_bids"`
	Scheduled     int `json:"scheduled"`
	Pending       int `json:"pending"`
	Failed        int `json:"failed"`
}

// Sweeper settles expired lots.
type Sweeper struct {
	cfg     Config
	lots    repository.LotRepository
	prizes  repository.PrizeSink
	clock   Clock
	metrics *metrics.Metrics

	settleMu sync.Mutex

	mu        sync.Mutex
	processed map[model.ID]struct{}
	timers    map[model.ID]Timer
	started   bool
	stopped   bool
	baseCtx   context.Context
	cancel    context.CancelFunc

	wg       sync.WaitGroup
	inflight sync.WaitGroup
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithClock overrides the time source and timer factory.
func WithClock(c Clock) Option {
	return func(s *Sweeper) {
		s.clock = c
	}
}

// WithMetrics records settlement outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Sweeper) {
		s.metrics = m
	}
}

// New creates a Sweeper.
func New(cfg Config, lots repository.LotRepository, prizes repository.PrizeSink, opts ...Option) *Sweeper {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	s := &Sweeper{
		cfg:       cfg,
		lots:      lots,
		prizes:    prizes,
		clock:     SystemClock(),
		processed: make(map[model.ID]struct{}),
		timers:    make(map[model.ID]Timer),
		baseCtx:   context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs a sweep immediately and then on every interval.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrStopped
	}
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.baseCtx, s.cancel = context.WithCancel(ctx)
	runCtx := s.baseCtx
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(runCtx)

	utils.Info("settlement sweeper started", map[string]any{
		"interval": s.cfg.Interval.String(),
	})
	return nil
}

// Stop ends the sweep loop and cancels every pending timer.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	cancel := s.cancel
	s.mu.Unlock()
	s.metrics.SetScheduledTimers(0)

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		utils.Info("settlement sweeper stopped", nil)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main sweep loop.
func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// Sweep immediately on start.
	s.sweepAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepAndLog(ctx)
		}
	}
}

func (s *Sweeper) sweepAndLog(ctx context.Context) {
	report, err := s.SweepOnce(ctx)
	if err != nil {
		// already logged; the next tick retries
		return
	}
	if report.Settled > 0 || report.Failed > 0 || report.Scheduled > 0 {
		utils.Info("settlement sweep complete", map[string]any{
			"lots":      report.Lots,
			"settled":   report.Settled,
			"no_bids":   report.NoBids,
			"scheduled": report.Scheduled,
			"failed":    report.Failed,
		})
	}
}

// SweepOnce loads every lot, settles the expired ones and schedules a timer for each open one.
func (s *Sweeper) SweepOnce(ctx context.Context) (Report, error) {
	start := s.clock.Now()

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	lots, err := s.lots.ListLots(callCtx)
	cancel()
	if err != nil {
		s.metrics.ObserveSweep(s.clock.Now().Sub(start), err)
		utils.Warn("settlement sweep skipped: failed to load lots", map[string]any{"error": err.Error()})
		return Report{}, fmt.Errorf("sweep: %w: %w", biddingerrors.ErrLoadFailed, err)
	}

	var report Report
	now := s.clock.Now()
	for _, lot := range lots {
		report.Lots++

		switch {
		case lot.Issued:
			s.markProcessed(lot.ID)
			report.AlreadyIssued++
		case s.IsProcessed(lot.ID):
			report.Skipped++
		case lot.IsClosed(now):
			outcome, err := s.Settle(ctx, lot)
			report.tally(outcome, err)
		default:
			if s.schedule(lot, now) {
				report.Scheduled++
			} else {
				report.Pending++
			}
		}
	}

	s.metrics.ObserveSweep(s.clock.Now().Sub(start), nil)
	return report, nil
}

func (r *Report) tally(outcome Outcome, err error) {
	switch {
	case err != nil:
		r.Failed++
	case outcome == OutcomeIssued || outcome == OutcomeDuplicate:
		r.Settled++
	case outcome == OutcomeNoBids:
		r.NoBids++
	case outcome == OutcomeAlreadyIssued:
		r.AlreadyIssued++
	default:
		r.Skipped++
	}
}

// Settle issues the prize for an expired lot. It is safe to call any number of times.
// Only a failed prize lookup or creation returns an error; the lot stays eligible for the next sweep.
func (s *Sweeper) Settle(ctx context.Context, lot model.Lot) (Outcome, error) {
	s.settleMu.Lock()
	defer s.settleMu.Unlock()

	if s.IsProcessed(lot.ID) {
		return OutcomeAlreadyProcessed, nil
	}
	if lot.Issued {
		s.markProcessed(lot.ID)
		s.metrics.ObserveSettlement(string(OutcomeAlreadyIssued))
		return OutcomeAlreadyIssued, nil
	}

	winner, ok := lot.WinningBid()
	if !ok {
		s.markProcessed(lot.ID)
		s.metrics.ObserveSettlement(string(OutcomeNoBids))
		utils.Info("settlement: lot ended without bids", map[string]any{"lot_id": lot.ID})
		return OutcomeNoBids, nil
	}

	prize := model.PrizeEntry{
		Title:    lot.Title,
		ImageURI: lot.ImageURL,
		Price:    "0",
		LotID:    lot.ID,
		WinnerID: winner.UserID,
	}

	exists, err := s.prizeExists(ctx, prize)
	if err != nil {
		return s.issuanceFailed(lot, err)
	}

	outcome := OutcomeDuplicate
	if !exists {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		_, err := s.prizes.CreatePrize(callCtx, prize)
		cancel()
		if err != nil {
			return s.issuanceFailed(lot, err)
		}
		outcome = OutcomeIssued
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	_, err = s.lots.MarkIssued(callCtx, lot.ID)
	cancel()
	if err != nil {
		// the processed set and the duplicate check cover a missing flag
		s.metrics.ObserveSettlement(metrics.SettlementMarkIssuedError)
		utils.Warn("settlement: "+biddingerrors.ErrMarkIssuedFailed.Error(), map[string]any{
			"lot_id": lot.ID,
			"error":  err.Error(),
		})
	}

	s.markProcessed(lot.ID)
	s.metrics.ObserveSettlement(string(outcome))
	utils.Info("settlement: prize issued", map[string]any{
		"lot_id":    lot.ID,
		"winner_id": winner.UserID,
		"price":     lot.CurrentPrice.String(),
		"duplicate": outcome == OutcomeDuplicate,
	})
	return outcome, nil
}

func (s *Sweeper) issuanceFailed(lot model.Lot, err error) (Outcome, error) {
	s.metrics.ObserveSettlement(string(OutcomeFailed))
	utils.Error("settlement: "+biddingerrors.ErrPrizeIssuanceFailed.Error(), map[string]any{
		"lot_id": lot.ID,
		"error":  err.Error(),
	})
	return OutcomeFailed, fmt.Errorf("settle lot %s: %w: %w", lot.ID, biddingerrors.ErrPrizeIssuanceFailed, err)
}

// prizeExists looks for an entry with the same title, image and zero price
func (s *Sweeper) prizeExists(ctx context.Context, prize model.PrizeEntry) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	entries, err := s.prizes.ListPrizes(callCtx)
	if err != nil {
		return false, fmt.Errorf("check existing prizes: %w", err)
	}
	for _, e := range entries {
		if e.Title == prize.Title && e.ImageURI == prize.ImageURI && e.Price.IsZero() {
			return true, nil
		}
	}
	return false, nil
}

// schedule arms a one-shot timer at the lot's end time unless one is pending.
func (s *Sweeper) schedule(lot model.Lot, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	if _, ok := s.timers[lot.ID]; ok {
		return false
	}

	lotID := lot.ID
	s.timers[lotID] = s.clock.AfterFunc(lot.EndTime.Sub(now), func() { s.onDeadline(lotID) })
	s.metrics.SetScheduledTimers(len(s.timers))
	return true
}

// onDeadline re-reads the lot when its timer fires and settles it.
func (s *Sweeper) onDeadline(lotID model.ID) {
	s.mu.Lock()
	delete(s.timers, lotID)
	s.metrics.SetScheduledTimers(len(s.timers))
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.inflight.Add(1)
	ctx := s.baseCtx
	s.mu.Unlock()
	defer s.inflight.Done()

	if s.IsProcessed(lotID) {
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	lot, err := s.lots.GetLot(callCtx, lotID)
	cancel()
	if err != nil {
		utils.Warn("settlement: failed to reload lot at deadline", map[string]any{
			"lot_id": lotID,
			"error":  err.Error(),
		})
		return
	}

	now := s.clock.Now()
	if !lot.Issued && !lot.IsClosed(now) {
		s.schedule(lot, now)
		return
	}

	// errors are logged by Settle; the next sweep retries
	_, _ = s.Settle(ctx, lot)
}

func (s *Sweeper) markProcessed(lotID model.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processed[lotID] = struct{}{}
	if t, ok := s.timers[lotID]; ok {
		t.Stop()
		delete(s.timers, lotID)
		s.metrics.SetScheduledTimers(len(s.timers))
	}
}

// IsProcessed reports whether this process already settled or saw the lot settled.
func (s *Sweeper) IsProcessed(lotID model.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.processed[lotID]
	return ok
}

// PendingTimers returns the number of open lots waiting on a timer.
func (s *Sweeper) PendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
