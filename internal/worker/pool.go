// Package worker distributes elimination-average computation across a small
// pool of long-lived worker units. Units communicate only by message passing;
// each receives its own contiguous batch of guess words and returns an
// independent result that the pool merges deterministically.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/wordle/internal/domain"
	"svw.info/wordle/internal/eliminate"
	"svw.info/wordle/internal/ports"
)

// ErrWorkerFailure marks a worker unit that crashed or returned malformed
// data. The whole request is aborted; the pool recreates its units on the
// next request.
var ErrWorkerFailure = errors.New("worker failure")

// job is the single request message a unit accepts.
type job struct {
	ctx      context.Context
	guesses  []domain.Word
	common   []domain.Word
	other    []domain.Word
	isCommon func(domain.Word) bool
	tick     chan<- int
	out      chan<- jobResult
}

// jobResult is the single response message a unit produces.
type jobResult struct {
	averages    []domain.GuessAverage
	comparisons int
	err         error
}

type unit struct {
	jobs chan job
}

func (u *unit) run() {
	for j := range u.jobs {
		j.out <- u.compute(j)
	}
}

func (u *unit) compute(j job) (res jobResult) {
	defer func() {
		if r := recover(); r != nil {
			res = jobResult{err: fmt.Errorf("%w: %v", ErrWorkerFailure, r)}
		}
	}()
	avgs, comps, err := eliminate.Averages(j.ctx, j.guesses, j.common, j.other, j.isCommon, func(n int) {
		select {
		case j.tick <- n:
		case <-j.ctx.Done():
		}
	})
	return jobResult{averages: avgs, comparisons: comps, err: err}
}

// Pool owns the worker units. One request runs at a time; requests submitted
// while another is in flight wait for it. Units cancelled or failed mid-job
// are discarded, never reused.
type Pool struct {
	size     int
	isCommon func(domain.Word) bool
	log      *slog.Logger

	mu    sync.Mutex // held for the whole of a request; serializes the queue
	units []*unit
}

// NewPool creates a distributor with size units (GOMAXPROCS when size <= 0).
// isCommon labels guess words for the strategy layer. Units are spawned
// lazily on first use.
func NewPool(size int, isCommon func(domain.Word) bool, log *slog.Logger) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pool{size: size, isCommon: isCommon, log: log}
}

var _ ports.Distributor = (*Pool)(nil)

// Averages splits guesses into contiguous near-equal batches, one per unit,
// and merges the results sorted ascending by all-pool average with original
// order breaking ties. Progress, if non-nil, receives cumulative
// (done, total) pairs; sends never block and the channel is left open for
// the caller to close. On cancellation or worker failure no result is
// delivered and the units are discarded.
func (p *Pool) Averages(ctx context.Context, guesses, commonAnswers, otherAnswers []domain.Word, progress chan<- domain.Progress) ([]domain.GuessAverage, ports.Stats, error) {
	start := time.Now()
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if p.units == nil {
		p.spawnLocked()
	}

	total := len(guesses) * (len(commonAnswers) + len(otherAnswers))
	tick := make(chan int, 4*len(p.units))
	aggDone := make(chan struct{})
	go func() {
		defer close(aggDone)
		done := 0
		for n := range tick {
			done += n
			report(progress, domain.Progress{Done: done, Total: total})
		}
	}()

	batches := splitBatches(guesses, len(p.units))
	results := make([]jobResult, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		if len(batch) == 0 {
			continue
		}
		u := p.units[i]
		i, batch := i, batch
		g.Go(func() error {
			out := make(chan jobResult, 1)
			select {
			case u.jobs <- job{
				ctx:      gctx,
				guesses:  batch,
				common:   commonAnswers,
				other:    otherAnswers,
				isCommon: p.isCommon,
				tick:     tick,
				out:      out,
			}:
			case <-gctx.Done():
				return gctx.Err()
			}
			select {
			case res := <-out:
				if res.err != nil {
					return res.err
				}
				if len(res.averages) != len(batch) {
					return fmt.Errorf("%w: %d averages for %d guesses", ErrWorkerFailure, len(res.averages), len(batch))
				}
				results[i] = res
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	err := g.Wait()
	close(tick)
	<-aggDone

	stats := ports.Stats{Duration: time.Since(start)}
	for _, r := range results {
		stats.Comparisons += r.comparisons
	}
	if err != nil {
		// Units may still be chewing on an abandoned job; cut them loose.
		p.discardLocked()
		p.log.Debug("averages aborted", "err", err, "dur", stats.Duration)
		return nil, stats, err
	}

	merged := make([]domain.GuessAverage, 0, len(guesses))
	for _, r := range results {
		merged = append(merged, r.averages...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].All < merged[j].All
	})
	report(progress, domain.Progress{Done: total, Total: total})
	return merged, stats, nil
}

// Close discards the worker units. The pool may be reused afterwards; units
// respawn on the next request.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.discardLocked()
}

func (p *Pool) spawnLocked() {
	p.units = make([]*unit, p.size)
	for i := range p.units {
		u := &unit{jobs: make(chan job)}
		p.units[i] = u
		go u.run()
	}
}

func (p *Pool) discardLocked() {
	for _, u := range p.units {
		close(u.jobs)
	}
	p.units = nil
}

// splitBatches cuts words into n contiguous near-equal slices. Earlier
// batches take the remainder so concatenation preserves input order.
func splitBatches(words []domain.Word, n int) [][]domain.Word {
	if n < 1 {
		n = 1
	}
	out := make([][]domain.Word, n)
	base, rem := len(words)/n, len(words)%n
	at := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		out[i] = words[at : at+size]
		at += size
	}
	return out
}

func report(progress chan<- domain.Progress, pr domain.Progress) {
	if progress == nil {
		return
	}
	select {
	case progress <- pr:
	default:
	}
}
