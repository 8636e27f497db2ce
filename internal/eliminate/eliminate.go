// Package eliminate computes, for candidate guess words, the average number
// of answers that would remain after playing them, across every possible
// true answer.
package eliminate

import (
	"context"

	"svw.info/wordle/internal/clue"
	"svw.info/wordle/internal/domain"
)

// cacheEntry memoizes the remaining-count pair for one color signature of
// the current guess. Keyed by signature, never by answer: two answers that
// produce the same visible pattern yield the same clue up to letter identity
// already fixed by the guess, so their remaining counts are identical.
type cacheEntry struct {
	ok     bool
	common int
	all    int
}

// Averages computes the (common, all) average-remaining pair for every guess
// in guesses against the answer pools. isCommon labels each guess word for
// downstream strategy decisions. tick, if non-nil, is called once per guess
// with the number of true answers processed. Cancellation is checked per
// guess. The second return is the possibility-filter comparison count.
func Averages(ctx context.Context, guesses, commonAnswers, otherAnswers []domain.Word, isCommon func(domain.Word) bool, tick func(answers int)) ([]domain.GuessAverage, int, error) {
	total := len(commonAnswers) + len(otherAnswers)
	out := make([]domain.GuessAverage, 0, len(guesses))
	comparisons := 0

	var cache [domain.NumSignatures]cacheEntry
	for _, g := range guesses {
		if err := ctx.Err(); err != nil {
			return nil, comparisons, err
		}
		for i := range cache {
			cache[i] = cacheEntry{}
		}

		var sumCommon, sumAll int
		scan := func(answers []domain.Word) {
			for _, a := range answers {
				c := clue.Generate(a, g)
				e := &cache[c.Colors().Signature()]
				if !e.ok {
					e.ok = true
					for _, w := range commonAnswers {
						comparisons++
						if clue.Possible(w, c) {
							e.common++
						}
					}
					e.all = e.common
					for _, w := range otherAnswers {
						comparisons++
						if clue.Possible(w, c) {
							e.all++
						}
					}
				}
				sumCommon += e.common
				sumAll += e.all
			}
		}
		scan(commonAnswers)
		scan(otherAnswers)

		avg := domain.GuessAverage{Word: g, IsCommon: isCommon(g)}
		if total > 0 {
			avg.Common = float64(sumCommon) / float64(total)
			avg.All = float64(sumAll) / float64(total)
		}
		out = append(out, avg)
		if tick != nil {
			tick(total)
		}
	}
	return out, comparisons, nil
}

// Distribution returns, for a single guess, the all-pool remaining count per
// possible true answer, common answers first then other, in pool order. The
// luck scorer consumes this as the outcome distribution of the play.
func Distribution(ctx context.Context, guess domain.Word, commonAnswers, otherAnswers []domain.Word) ([]int, int, error) {
	out := make([]int, 0, len(commonAnswers)+len(otherAnswers))
	comparisons := 0

	var cache [domain.NumSignatures]cacheEntry
	scan := func(answers []domain.Word) error {
		for _, a := range answers {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := clue.Generate(a, guess)
			e := &cache[c.Colors().Signature()]
			if !e.ok {
				e.ok = true
				for _, w := range commonAnswers {
					comparisons++
					if clue.Possible(w, c) {
						e.common++
					}
				}
				e.all = e.common
				for _, w := range otherAnswers {
					comparisons++
					if clue.Possible(w, c) {
						e.all++
					}
				}
			}
			out = append(out, e.all)
		}
		return nil
	}
	if err := scan(commonAnswers); err != nil {
		return nil, comparisons, err
	}
	if err := scan(otherAnswers); err != nil {
		return nil, comparisons, err
	}
	return out, comparisons, nil
}
