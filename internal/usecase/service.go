package usecase

import (
	"context"
	"errors"

	"svw.info/wordle/internal/domain"
	"svw.info/wordle/internal/ports"
)

// Service bundles the analysis surface and report persistence for the
// delivery layers.
type Service struct {
	Analyzer ports.Analyzer
	Storage  ports.Storage
}

func NewService(a ports.Analyzer, st ports.Storage) *Service {
	return &Service{Analyzer: a, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) AnalyzeGame(ctx context.Context, answer domain.Word, guesses []domain.Word, progress chan<- domain.Progress) (*domain.Report, error) {
	if u.Analyzer == nil {
		return nil, errNotConfigured
	}
	return u.Analyzer.AnalyzeGame(ctx, answer, guesses, progress)
}

func (u *Service) AnalyzeGuess(ctx context.Context, guess, answer domain.Word, prior []domain.Clue, progress chan<- domain.Progress) (*domain.GuessAnalysis, error) {
	if u.Analyzer == nil {
		return nil, errNotConfigured
	}
	return u.Analyzer.AnalyzeGuess(ctx, guess, answer, prior, progress)
}

func (u *Service) AIPlay(ctx context.Context, answer domain.Word, prior []domain.Clue, progress chan<- domain.Progress) (*domain.AIPlay, error) {
	if u.Analyzer == nil {
		return nil, errNotConfigured
	}
	return u.Analyzer.AIPlay(ctx, answer, prior, progress)
}

func (u *Service) SelfPlay(ctx context.Context, answer domain.Word, progress chan<- domain.Progress) ([]domain.AIPlay, error) {
	if u.Analyzer == nil {
		return nil, errNotConfigured
	}
	return u.Analyzer.SelfPlay(ctx, answer, progress)
}

func (u *Service) GuessColors(answer domain.Word, guesses []domain.Word) ([]domain.CellColors, error) {
	if u.Analyzer == nil {
		return nil, errNotConfigured
	}
	return u.Analyzer.GuessColors(answer, guesses)
}

func (u *Service) InvalidWords(words []domain.Word) ([]domain.Word, error) {
	if u.Analyzer == nil {
		return nil, errNotConfigured
	}
	return u.Analyzer.InvalidWords(words), nil
}

// Persistence
func (u *Service) Save(ctx context.Context, r *domain.Report) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, r)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Report, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.ReportMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
