// Package strategy holds the pure decision functions: choosing the AI's next
// play from elimination averages, and scoring a played guess for quality and
// luck. Nothing here mutates pools or enumerates words.
package strategy

import "svw.info/wordle/internal/domain"

// Selection is a chosen guess word plus the branch that picked it.
type Selection struct {
	Word     domain.Word
	Strategy domain.Strategy
}

// Select picks the AI's next play. averages must cover the guess universe
// and arrive sorted ascending by all-pool average (the distributor's merge
// order), which makes every branch deterministic: the first qualifying entry
// wins, and ties keep list order.
//
// The common pool is tried first; when it is exhausted the same four
// branches repeat against the other pool under the uncommon strategy tags.
func Select(remainingCommon, remainingOther []domain.Word, averages []domain.GuessAverage) (Selection, bool) {
	byWord := make(map[domain.Word]domain.GuessAverage, len(averages))
	for _, a := range averages {
		byWord[a.Word] = a
	}
	if sel, ok := pickHalf(remainingCommon, averages, byWord, true); ok {
		return sel, true
	}
	return pickHalf(remainingOther, averages, byWord, false)
}

func pickHalf(remaining []domain.Word, averages []domain.GuessAverage, byWord map[domain.Word]domain.GuessAverage, common bool) (Selection, bool) {
	switch n := len(remaining); {
	case n == 0:
		return Selection{}, false

	case n > 4:
		// Plenty of candidates: play the best eliminator from this half of
		// the dictionary, possible answer or not.
		for _, a := range averages {
			if a.IsCommon == common {
				return Selection{a.Word, tagFor(common, kindEliminate)}, true
			}
		}
		return Selection{}, false

	case n == 1:
		return Selection{remaining[0], tagFor(common, kindSingle)}, true

	case n == 2:
		best := remaining[0]
		if byWord[remaining[1]].All < byWord[best].All {
			best = remaining[1]
		}
		return Selection{best, tagFor(common, kindFiftyFifty)}, true

	default: // 3 or 4 candidates: eliminate while keeping a chance to win.
		best, found := remaining[0], false
		for _, w := range remaining {
			a, ok := byWord[w]
			if !ok {
				continue
			}
			if !found || a.All < byWord[best].All {
				best, found = w, true
			}
		}
		if !found {
			if len(averages) == 0 {
				return Selection{}, false
			}
			return Selection{averages[0].Word, tagFor(common, kindEliminate)}, true
		}
		return Selection{best, tagFor(common, kindWithAnswer)}, true
	}
}

type branchKind int

const (
	kindEliminate branchKind = iota
	kindWithAnswer
	kindFiftyFifty
	kindSingle
)

func tagFor(common bool, kind branchKind) domain.Strategy {
	if common {
		switch kind {
		case kindWithAnswer:
			return domain.StrategyEliminateCommonWithAnswer
		case kindFiftyFifty:
			return domain.StrategyFiftyFiftyCommon
		case kindSingle:
			return domain.StrategyPlaySingleCommon
		default:
			return domain.StrategyEliminateCommon
		}
	}
	switch kind {
	case kindWithAnswer:
		return domain.StrategyEliminateUncommonWithAnswer
	case kindFiftyFifty:
		return domain.StrategyFiftyFiftyUncommon
	case kindSingle:
		return domain.StrategyPlaySingleUncommon
	default:
		return domain.StrategyEliminateUncommon
	}
}
