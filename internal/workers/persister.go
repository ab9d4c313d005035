// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const defaultSaveTimeout = 10 * time.Second

type snapshot struct {
	seq     uint64
	records []models.EncryptedRecord
}

// Persister writes vault snapshots to a Saver from a single goroutine.
//
// Every snapshot is the full record list, so a newer one supersedes any
// snapshot still waiting. At most one snapshot waits while a save is in
// flight; Enqueue replaces it and never blocks on the backend. Saved
// snapshots keep increasing sequence numbers.
//
// Saves are never cancelled: Stop waits for the pending snapshot.
type Persister struct {
	saver    Saver
	listener SyncListener
	timeout  time.Duration
	baseCtx  context.Context
	logger   *logger.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending *snapshot
	seq     uint64
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// PersisterOptions tune a Persister. Zero values fall back to defaults.
type PersisterOptions struct {
	SaveTimeout time.Duration
}

// NewPersister builds an idle Persister. Call Run to start it.
//
// ctx only carries values (logger, trace ids) into every save; its
// cancellation is ignored so pending saves still complete.
func NewPersister(ctx context.Context, saver Saver, opts PersisterOptions, listener SyncListener) *Persister {
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = defaultSaveTimeout
	}
	if listener == nil {
		listener = func(models.SyncEvent) {}
	}

	p := &Persister{
		saver:    saver,
		listener: listener,
		timeout:  opts.SaveTimeout,
		baseCtx:  context.WithoutCancel(ctx),
		logger:   logger.FromContext(ctx),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Run implements Worker. It launches the goroutine that saves snapshots.
// Calling Run more than once has no effect.
func (p *Persister) Run() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.stopped {
		return
	}
	p.started = true

	p.wg.Add(1)
	go p.loop()
}

// Enqueue schedules records for saving and returns the snapshot sequence
// number. A snapshot that has not started saving yet is replaced.
func (p *Persister) Enqueue(records []models.EncryptedRecord) (uint64, error) {
	cp := make([]models.EncryptedRecord, len(records))
	copy(cp, records)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return 0, ErrPersisterStopped
	}
	if !p.started {
		return 0, ErrPersisterNotStarted
	}

	p.seq++
	if p.pending != nil {
		p.logger.Debug().
			Str("func", "Persister.Enqueue").
			Uint64("superseded", p.pending.seq).
			Uint64("seq", p.seq).
			Msg("pending snapshot replaced")
	}
	p.pending = &snapshot{seq: p.seq, records: cp}
	p.cond.Signal()

	return p.seq, nil
}

// Stop refuses further snapshots, waits until the pending snapshot has been
// saved and its event delivered, then returns. Safe to call more than once.
func (p *Persister) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Persister) loop() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.pending == nil && !p.stopped {
			p.cond.Wait()
		}
		snap := p.pending
		p.pending = nil
		p.mu.Unlock()

		if snap == nil {
			return
		}
		p.listener(p.save(*snap))
	}
}

func (p *Persister) save(snap snapshot) models.SyncEvent {
	ctx, cancel := context.WithTimeout(p.baseCtx, p.timeout)
	defer cancel()

	err := p.saver.Save(ctx, snap.records)

	event := models.SyncEvent{
		Seq:     snap.seq,
		Status:  models.SyncSaved,
		Method:  p.saver.Method(),
		Records: len(snap.records),
		At:      time.Now(),
	}
	if err != nil {
		event.Status = models.SyncFailed
		event.Err = err
		p.logger.Err(err).
			Str("func", "Persister.save").
			Uint64("seq", snap.seq).
			Str("method", event.Method.String()).
			Int("records", event.Records).
			Msg("snapshot was not persisted")
		return event
	}

	p.logger.Debug().
		Str("func", "Persister.save").
		Uint64("seq", snap.seq).
		Str("method", event.Method.String()).
		Int("records", event.Records).
		Msg("snapshot persisted")

	return event
}
