package ports

import (
	"context"
	"time"

	"svw.info/wordle/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Comparisons int
	Duration    time.Duration
}

// Distributor computes elimination averages for a batch of guess words
// against the current answer pools, in parallel. Results come back sorted
// ascending by all-pool average (ties keep guess order). Progress, if
// non-nil, receives cumulative (done, total) pairs where one unit is one
// true answer processed for one guess word; the channel is never closed by
// the distributor.
type Distributor interface {
	Averages(ctx context.Context, guesses, commonAnswers, otherAnswers []domain.Word, progress chan<- domain.Progress) ([]domain.GuessAverage, Stats, error)
	Close()
}

// Analyzer is the core analysis surface consumed by the delivery layers.
type Analyzer interface {
	AnalyzeGame(ctx context.Context, answer domain.Word, guesses []domain.Word, progress chan<- domain.Progress) (*domain.Report, error)
	AnalyzeGuess(ctx context.Context, guess, answer domain.Word, prior []domain.Clue, progress chan<- domain.Progress) (*domain.GuessAnalysis, error)
	AIPlay(ctx context.Context, answer domain.Word, prior []domain.Clue, progress chan<- domain.Progress) (*domain.AIPlay, error)
	SelfPlay(ctx context.Context, answer domain.Word, progress chan<- domain.Progress) ([]domain.AIPlay, error)
	GuessColors(answer domain.Word, guesses []domain.Word) ([]domain.CellColors, error)
	InvalidWords(words []domain.Word) []domain.Word
}

// Storage persists and retrieves analysis reports as JSON.
type Storage interface {
	Save(ctx context.Context, r *domain.Report) error
	Load(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context) ([]domain.ReportMeta, error)
}
