// Package orchestrator sequences the analysis of a played game: per turn it
// computes elimination averages (through the distributor), asks the strategy
// for the AI's alternative, shrinks the candidate pools with the turn's clue,
// and finally runs the AI-only playthrough for comparison.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"svw.info/wordle/internal/clue"
	"svw.info/wordle/internal/dictionary"
	"svw.info/wordle/internal/domain"
	"svw.info/wordle/internal/ports"
)

// Orchestrator owns the distributor handle and a single-slot in-flight
// request marker. Starting a new request implicitly cancels a prior one
// still running on the same instance.
type Orchestrator struct {
	dict *dictionary.Dictionary
	dist ports.Distributor
	log  *slog.Logger

	mu       sync.Mutex
	state    State
	inflight *request
}

type request struct {
	cancel context.CancelFunc
}

// New wires an orchestrator. dist must label guesses with the same
// dictionary's common flag.
func New(dict *dictionary.Dictionary, dist ports.Distributor, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{dict: dict, dist: dist, log: log, state: StateIdle}
}

var _ ports.Analyzer = (*Orchestrator)(nil)

// State reports the current request phase.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Close discards the worker units.
func (o *Orchestrator) Close() { o.dist.Close() }

// begin registers a new request, cancelling any in-flight one.
func (o *Orchestrator) begin(ctx context.Context) (context.Context, *request) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight != nil {
		o.inflight.cancel()
	}
	cctx, cancel := context.WithCancel(ctx)
	req := &request{cancel: cancel}
	o.inflight = req
	o.state = StateIdle
	return cctx, req
}

// setState records the phase, unless the request has been superseded.
func (o *Orchestrator) setState(req *request, s State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight == req {
		o.state = s
	}
}

// end resolves the request to its terminal state.
func (o *Orchestrator) end(req *request, err error) {
	req.cancel()
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight != req {
		return
	}
	o.inflight = nil
	switch {
	case err == nil:
		o.state = StateComplete
	case errors.Is(err, context.Canceled):
		o.state = StateAborted
	default:
		o.state = StateErrored
	}
}

// GuessColors derives the five-cell color pattern of each guess against the
// answer. Cheap direct clue derivation; no pool enumeration.
func (o *Orchestrator) GuessColors(answer domain.Word, guesses []domain.Word) ([]domain.CellColors, error) {
	if !answer.Valid() {
		return nil, fmt.Errorf("answer %q: %w", answer, ErrWordLength)
	}
	out := make([]domain.CellColors, 0, len(guesses))
	for _, g := range guesses {
		if !g.Valid() {
			return nil, fmt.Errorf("guess %q: %w", g, ErrWordLength)
		}
		out = append(out, clue.Generate(answer, g).Colors())
	}
	return out, nil
}

// InvalidWords returns the words that fail the dictionary membership check.
func (o *Orchestrator) InvalidWords(words []domain.Word) []domain.Word {
	return o.dict.Invalid(words)
}

// pools tracks the shrinking candidate answer pools through a game.
type pools struct {
	common []domain.Word
	other  []domain.Word
}

func (p pools) total() int { return len(p.common) + len(p.other) }

func (p pools) applyClue(c domain.Clue) pools {
	return pools{common: clue.Filter(p.common, c), other: clue.Filter(p.other, c)}
}

func (o *Orchestrator) fullPools() pools {
	return pools{common: o.dict.Common(), other: o.dict.Other()}
}

// poolsFrom replays prior clues over the full pools.
func (o *Orchestrator) poolsFrom(prior []domain.Clue) pools {
	cur := o.fullPools()
	for _, c := range prior {
		cur = cur.applyClue(c)
	}
	return cur
}

func (o *Orchestrator) validateAnswer(answer domain.Word) error {
	if !answer.Valid() {
		return fmt.Errorf("answer %q: %w", answer, ErrWordLength)
	}
	if !o.dict.Contains(answer) {
		return fmt.Errorf("answer %q: %w", answer, ErrNotInDictionary)
	}
	return nil
}
