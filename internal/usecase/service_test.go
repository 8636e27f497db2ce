package usecase

import (
	"context"
	"testing"

	"svw.info/wordle/internal/domain"
)

// A service missing a dependency must fail fast instead of panicking.
func TestNilDependencies(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, nil)

	if _, err := svc.AnalyzeGame(ctx, "light", nil, nil); err == nil {
		t.Error("AnalyzeGame without analyzer succeeded")
	}
	if _, err := svc.AnalyzeGuess(ctx, "light", "light", nil, nil); err == nil {
		t.Error("AnalyzeGuess without analyzer succeeded")
	}
	if _, err := svc.AIPlay(ctx, "light", nil, nil); err == nil {
		t.Error("AIPlay without analyzer succeeded")
	}
	if _, err := svc.SelfPlay(ctx, "light", nil); err == nil {
		t.Error("SelfPlay without analyzer succeeded")
	}
	if _, err := svc.GuessColors("light", nil); err == nil {
		t.Error("GuessColors without analyzer succeeded")
	}
	if _, err := svc.InvalidWords(nil); err == nil {
		t.Error("InvalidWords without analyzer succeeded")
	}
	if err := svc.Save(ctx, &domain.Report{ID: "x"}); err == nil {
		t.Error("Save without storage succeeded")
	}
	if _, err := svc.Load(ctx, "x"); err == nil {
		t.Error("Load without storage succeeded")
	}
	if _, err := svc.List(ctx); err == nil {
		t.Error("List without storage succeeded")
	}
}
