package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"svw.info/wordle/internal/clue"
	"svw.info/wordle/internal/domain"
	"svw.info/wordle/internal/eliminate"
	"svw.info/wordle/internal/strategy"
)

// topGuessCount is how many best alternatives each turn's report keeps.
const topGuessCount = 5

// AnalyzeGame analyzes a full played game: per-turn reports for every guess
// plus an independent AI playthrough from the full pools. If progress is
// non-nil it receives cumulative (done, total) pairs per elimination pass
// and is closed when the call returns. Cancelling ctx aborts with no report.
func (o *Orchestrator) AnalyzeGame(ctx context.Context, answer domain.Word, guesses []domain.Word, progress chan<- domain.Progress) (rep *domain.Report, err error) {
	if progress != nil {
		defer close(progress)
	}
	if err := o.validateAnswer(answer); err != nil {
		return nil, err
	}
	for _, g := range guesses {
		if !g.Valid() {
			return nil, fmt.Errorf("guess %q: %w", g, ErrWordLength)
		}
	}

	ctx, req := o.begin(ctx)
	defer func() { o.end(req, err) }()

	id := uuid.NewString()
	start := time.Now()
	o.log.Info("analysis start", "id", id, "answer", answer, "guesses", len(guesses))

	// Color patterns are direct clue applications; this phase exists so
	// callers polling State see the same progression for every request.
	o.setState(req, StateComputingClueColors)
	if _, err := o.GuessColors(answer, guesses); err != nil {
		return nil, err
	}

	o.setState(req, StateComputingUserTurns)
	cur := o.fullPools()
	var prior []domain.Clue
	turns := make([]domain.GuessAnalysis, 0, len(guesses))
	for _, g := range guesses {
		ga, err := o.analyzeTurn(ctx, g, answer, prior, cur, progress)
		if err != nil {
			return nil, err
		}
		turns = append(turns, *ga)
		prior = append(prior, ga.User.Clue)
		cur = pools{common: ga.User.RemainingCommon, other: ga.User.RemainingOther}
	}

	o.setState(req, StateComputingAIPlaythrough)
	aiGame, err := o.selfPlayLoop(ctx, answer, o.fullPools(), nil, progress)
	if err != nil {
		return nil, err
	}

	rep = &domain.Report{
		ID:        id,
		Answer:    answer,
		CreatedAt: time.Now().UnixNano(),
		Turns:     turns,
		AIGame:    aiGame,
		Summary:   summarize(turns, aiGame),
	}
	o.log.Info("analysis done", "id", id, "dur", time.Since(start).Round(time.Millisecond))
	return rep, nil
}

// AnalyzeGuess evaluates one played guess given the clues accumulated before
// it, alongside the AI's alternative for the same state. progress, if
// non-nil, is closed when the call returns.
func (o *Orchestrator) AnalyzeGuess(ctx context.Context, guess, answer domain.Word, prior []domain.Clue, progress chan<- domain.Progress) (ga *domain.GuessAnalysis, err error) {
	if progress != nil {
		defer close(progress)
	}
	if err := o.validateAnswer(answer); err != nil {
		return nil, err
	}
	if !guess.Valid() {
		return nil, fmt.Errorf("guess %q: %w", guess, ErrWordLength)
	}
	ctx, req := o.begin(ctx)
	defer func() { o.end(req, err) }()
	o.setState(req, StateComputingUserTurns)
	return o.analyzeTurn(ctx, guess, answer, prior, o.poolsFrom(prior), progress)
}

// AIPlay computes a single step of the AI's game from the given clue state.
// progress, if non-nil, is closed when the call returns.
func (o *Orchestrator) AIPlay(ctx context.Context, answer domain.Word, prior []domain.Clue, progress chan<- domain.Progress) (ap *domain.AIPlay, err error) {
	if progress != nil {
		defer close(progress)
	}
	if err := o.validateAnswer(answer); err != nil {
		return nil, err
	}
	ctx, req := o.begin(ctx)
	defer func() { o.end(req, err) }()
	o.setState(req, StateComputingAIPlaythrough)

	cur := o.poolsFrom(prior)
	avgs, _, err := o.dist.Averages(ctx, o.dict.All(), cur.common, cur.other, progress)
	if err != nil {
		return nil, err
	}
	sel, ok := strategy.Select(cur.common, cur.other, avgs)
	if !ok {
		return nil, fmt.Errorf("no candidates remain for answer %q", answer)
	}
	pa, err := o.analyzePlay(ctx, sel.Word, answer, prior, cur, avgs)
	if err != nil {
		return nil, err
	}
	return &domain.AIPlay{
		CommonBefore: len(cur.common),
		OtherBefore:  len(cur.other),
		Play:         pa,
		Strategy:     sel.Strategy,
	}, nil
}

// SelfPlay runs the AI-only game from the full pools until it finds the
// answer. progress, if non-nil, is closed when the call returns.
func (o *Orchestrator) SelfPlay(ctx context.Context, answer domain.Word, progress chan<- domain.Progress) (plays []domain.AIPlay, err error) {
	if progress != nil {
		defer close(progress)
	}
	if err := o.validateAnswer(answer); err != nil {
		return nil, err
	}
	ctx, req := o.begin(ctx)
	defer func() { o.end(req, err) }()
	o.setState(req, StateComputingAIPlaythrough)
	return o.selfPlayLoop(ctx, answer, o.fullPools(), nil, progress)
}

// analyzeTurn produces one turn's bundle: the user's play and the AI's
// alternative, both evaluated against the same incoming state.
func (o *Orchestrator) analyzeTurn(ctx context.Context, guess, answer domain.Word, prior []domain.Clue, cur pools, progress chan<- domain.Progress) (*domain.GuessAnalysis, error) {
	avgs, _, err := o.dist.Averages(ctx, o.dict.All(), cur.common, cur.other, progress)
	if err != nil {
		return nil, err
	}
	sel, ok := strategy.Select(cur.common, cur.other, avgs)
	if !ok {
		return nil, fmt.Errorf("no candidates remain for answer %q", answer)
	}
	user, err := o.analyzePlay(ctx, guess, answer, prior, cur, avgs)
	if err != nil {
		return nil, err
	}
	ai, err := o.analyzePlay(ctx, sel.Word, answer, prior, cur, avgs)
	if err != nil {
		return nil, err
	}

	top := avgs
	if len(top) > topGuessCount {
		top = top[:topGuessCount]
	}
	return &domain.GuessAnalysis{
		CommonBefore: len(cur.common),
		OtherBefore:  len(cur.other),
		User:         user,
		AI:           ai,
		Strategy:     sel.Strategy,
		Best:         comparePlays(user, ai),
		TopGuesses:   append([]domain.GuessAverage(nil), top...),
	}, nil
}

// analyzePlay evaluates a single play against the incoming pools. The guess
// need not be a dictionary word; averages are simply absent then.
func (o *Orchestrator) analyzePlay(ctx context.Context, guess, answer domain.Word, prior []domain.Clue, cur pools, avgs []domain.GuessAverage) (domain.PlayAnalysis, error) {
	cl := clue.Generate(answer, guess)
	next := cur.applyClue(cl)

	pa := domain.PlayAnalysis{
		Guess:              guess,
		Clue:               cl,
		Colors:             cl.Colors(),
		Correct:            guess == answer,
		IsCommon:           o.dict.IsCommon(guess),
		HardModeViolations: clue.Violations(guess, prior),
		UnusedClues:        clue.Unused(guess, prior),
		RemainingCommon:    next.common,
		RemainingOther:     next.other,
	}

	played := float64(next.total())
	for _, a := range avgs {
		if a.Word == guess {
			pa.AvgRemaining = &domain.AvgRemaining{Common: a.Common, All: a.All}
			played = a.All
			break
		}
	}
	best := played
	if len(avgs) > 0 {
		best = avgs[0].All // distributor sorts ascending
	}
	pa.Quality = strategy.Quality(cur.total(), played, best)

	outcomes, _, err := eliminate.Distribution(ctx, guess, cur.common, cur.other)
	if err != nil {
		return domain.PlayAnalysis{}, err
	}
	pa.Luck = strategy.LuckOf(next.total(), outcomes)
	return pa, nil
}

// selfPlayLoop drives the AI's own game until it plays the answer. Each
// chosen possible-answer guess is eliminated by its own clue, so the loop is
// bounded by dictionary exhaustion.
func (o *Orchestrator) selfPlayLoop(ctx context.Context, answer domain.Word, cur pools, prior []domain.Clue, progress chan<- domain.Progress) ([]domain.AIPlay, error) {
	var plays []domain.AIPlay
	for turn := 0; turn < o.dict.Len(); turn++ {
		avgs, _, err := o.dist.Averages(ctx, o.dict.All(), cur.common, cur.other, progress)
		if err != nil {
			return nil, err
		}
		sel, ok := strategy.Select(cur.common, cur.other, avgs)
		if !ok {
			break
		}
		pa, err := o.analyzePlay(ctx, sel.Word, answer, prior, cur, avgs)
		if err != nil {
			return nil, err
		}
		plays = append(plays, domain.AIPlay{
			CommonBefore: len(cur.common),
			OtherBefore:  len(cur.other),
			Play:         pa,
			Strategy:     sel.Strategy,
		})
		if pa.Correct {
			return plays, nil
		}
		prior = append(prior, pa.Clue)
		cur = pools{common: pa.RemainingCommon, other: pa.RemainingOther}
	}
	return plays, nil
}

// comparePlays decides which play was objectively better: lower expected
// remaining wins; a play with no average falls back to its actual remaining
// count.
func comparePlays(user, ai domain.PlayAnalysis) domain.BestPlay {
	uv, av := playValue(user), playValue(ai)
	switch {
	case uv < av:
		return domain.BestUser
	case av < uv:
		return domain.BestAI
	default:
		return domain.BestTie
	}
}

func playValue(p domain.PlayAnalysis) float64 {
	if p.AvgRemaining != nil {
		return p.AvgRemaining.All
	}
	return float64(p.RemainingAll())
}

func summarize(turns []domain.GuessAnalysis, aiGame []domain.AIPlay) domain.Summary {
	s := domain.Summary{UserTurns: len(turns), AITurns: len(aiGame)}
	if len(turns) > 0 {
		s.Solved = turns[len(turns)-1].User.Correct
		sum := 0.0
		for _, t := range turns {
			sum += t.User.Quality
		}
		s.MeanQuality = sum / float64(len(turns))
	}
	return s
}
