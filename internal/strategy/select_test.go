package strategy

import (
	"testing"

	"svw.info/wordle/internal/domain"
)

func avg(w domain.Word, common bool, all float64) domain.GuessAverage {
	return domain.GuessAverage{Word: w, IsCommon: common, Common: all, All: all}
}

func TestSelectEliminateCommon(t *testing.T) {
	common := []domain.Word{"light", "night", "fight", "sight", "might"}
	// Sorted ascending by All; the best eliminator happens to be uncommon,
	// but with > 4 common candidates the branch insists on a common word.
	averages := []domain.GuessAverage{
		avg("roate", false, 1.2),
		avg("light", true, 1.5),
		avg("night", true, 1.7),
	}
	sel, ok := Select(common, nil, averages)
	if !ok {
		t.Fatal("Select returned no selection")
	}
	if sel.Word != "light" || sel.Strategy != domain.StrategyEliminateCommon {
		t.Fatalf("got (%q, %s), want (light, %s)", sel.Word, sel.Strategy, domain.StrategyEliminateCommon)
	}
}

func TestSelectPlaySingleCommon(t *testing.T) {
	sel, ok := Select([]domain.Word{"light"}, []domain.Word{"roate", "crane"}, []domain.GuessAverage{avg("light", true, 1)})
	if !ok || sel.Word != "light" || sel.Strategy != domain.StrategyPlaySingleCommon {
		t.Fatalf("got (%q, %s, %v)", sel.Word, sel.Strategy, ok)
	}
}

func TestSelectFiftyFiftyCommon(t *testing.T) {
	averages := []domain.GuessAverage{
		avg("night", true, 1.0),
		avg("light", true, 1.5),
	}
	sel, ok := Select([]domain.Word{"light", "night"}, nil, averages)
	if !ok || sel.Word != "night" || sel.Strategy != domain.StrategyFiftyFiftyCommon {
		t.Fatalf("got (%q, %s, %v), want the lower-average of the two", sel.Word, sel.Strategy, ok)
	}

	// Equal averages keep the first candidate.
	tied := []domain.GuessAverage{avg("light", true, 1.0), avg("night", true, 1.0)}
	sel, _ = Select([]domain.Word{"light", "night"}, nil, tied)
	if sel.Word != "light" {
		t.Fatalf("tie broke to %q, want light", sel.Word)
	}
}

func TestSelectEliminateCommonWithAnswer(t *testing.T) {
	common := []domain.Word{"light", "night", "fight"}
	averages := []domain.GuessAverage{
		avg("roate", false, 0.9), // better eliminator, but not a candidate
		avg("fight", true, 1.1),
		avg("light", true, 1.4),
		avg("night", true, 1.6),
	}
	sel, ok := Select(common, nil, averages)
	if !ok || sel.Word != "fight" || sel.Strategy != domain.StrategyEliminateCommonWithAnswer {
		t.Fatalf("got (%q, %s, %v), want (fight, %s)", sel.Word, sel.Strategy, ok, domain.StrategyEliminateCommonWithAnswer)
	}
}

func TestSelectUncommonBranches(t *testing.T) {
	tests := []struct {
		name     string
		other    []domain.Word
		averages []domain.GuessAverage
		word     domain.Word
		strategy domain.Strategy
	}{
		{
			name:     "eliminate",
			other:    []domain.Word{"roate", "crane", "dunks", "crwth", "blimp"},
			averages: []domain.GuessAverage{avg("light", true, 1.0), avg("crane", false, 1.2)},
			word:     "crane",
			strategy: domain.StrategyEliminateUncommon,
		},
		{
			name:     "with answer",
			other:    []domain.Word{"roate", "crane", "dunks"},
			averages: []domain.GuessAverage{avg("crane", false, 1.0), avg("roate", false, 1.3), avg("dunks", false, 1.5)},
			word:     "crane",
			strategy: domain.StrategyEliminateUncommonWithAnswer,
		},
		{
			name:     "fifty fifty",
			other:    []domain.Word{"roate", "crane"},
			averages: []domain.GuessAverage{avg("crane", false, 1.0), avg("roate", false, 1.5)},
			word:     "crane",
			strategy: domain.StrategyFiftyFiftyUncommon,
		},
		{
			name:     "single",
			other:    []domain.Word{"roate"},
			averages: []domain.GuessAverage{avg("roate", false, 1.0)},
			word:     "roate",
			strategy: domain.StrategyPlaySingleUncommon,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// The common pool is empty, so every branch mirrors to other.
			sel, ok := Select(nil, tc.other, tc.averages)
			if !ok {
				t.Fatal("Select returned no selection")
			}
			if sel.Word != tc.word || sel.Strategy != tc.strategy {
				t.Fatalf("got (%q, %s), want (%q, %s)", sel.Word, sel.Strategy, tc.word, tc.strategy)
			}
		})
	}
}

func TestSelectNothingLeft(t *testing.T) {
	if sel, ok := Select(nil, nil, nil); ok {
		t.Fatalf("Select on empty pools returned %+v", sel)
	}
}

func TestSelectDeterministic(t *testing.T) {
	common := []domain.Word{"light", "night", "fight", "sight", "might"}
	averages := []domain.GuessAverage{
		avg("sight", true, 1.0),
		avg("light", true, 1.1),
	}
	first, _ := Select(common, nil, averages)
	for i := 0; i < 10; i++ {
		again, _ := Select(common, nil, averages)
		if again != first {
			t.Fatalf("run %d picked %+v, first pick was %+v", i, again, first)
		}
	}
}
