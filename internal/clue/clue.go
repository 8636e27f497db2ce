// Package clue holds the two pure functions at the heart of the analyzer:
// deriving the clue an (answer, guess) pair produces, and testing whether a
// candidate word is still consistent with a clue.
package clue

import "svw.info/wordle/internal/domain"

// Generate derives the clue the answer reveals for guess. Two passes, greens
// before yellows, so that repeated guess letters only claim as many
// occurrences as the answer actually contains; extras fall through to
// MustNotContain. Inputs must be valid five-letter words.
func Generate(answer, guess domain.Word) domain.Clue {
	var c domain.Clue

	// Letters of the answer not claimed by a green, by count.
	var remaining [26]int8
	for i := 0; i < domain.WordLen; i++ {
		if guess[i] == answer[i] {
			c.PositionalMatches[i] = guess[i]
		} else {
			remaining[answer[i]-'a']++
		}
	}

	for i := 0; i < domain.WordLen; i++ {
		if c.PositionalMatches[i] != 0 {
			continue
		}
		b := guess[i]
		if remaining[b-'a'] > 0 {
			remaining[b-'a']--
			c.PositionalNotMatches[i] = b
			c.AdditionalRequired = append(c.AdditionalRequired, b)
		} else if !inSet(c.MustNotContain, b) {
			c.MustNotContain = append(c.MustNotContain, b)
		}
	}
	return c
}

// Possible reports whether candidate could still be the answer given c.
//
// The required-letters check runs before the must-not-contain check. That
// ordering carries the duplicate-letter semantics: a letter can be required
// once and forbidden as an extra occurrence at the same time, so a candidate
// may contain exactly the required count of it but no more.
func Possible(candidate domain.Word, c domain.Clue) bool {
	var required [26]int8
	unmet := len(c.AdditionalRequired)
	for _, b := range c.AdditionalRequired {
		required[b-'a']++
	}

	for i := 0; i < domain.WordLen; i++ {
		b := candidate[i]
		if m := c.PositionalMatches[i]; m != 0 {
			if b != m {
				return false
			}
			continue
		}
		if c.PositionalNotMatches[i] == b {
			return false
		}
		if required[b-'a'] > 0 {
			required[b-'a']--
			unmet--
			continue
		}
		if inSet(c.MustNotContain, b) {
			return false
		}
	}
	return unmet == 0
}

// PossibleAll reports whether candidate satisfies every clue in clues.
func PossibleAll(candidate domain.Word, clues []domain.Clue) bool {
	for _, c := range clues {
		if !Possible(candidate, c) {
			return false
		}
	}
	return true
}

// Filter returns the members of pool still consistent with c, preserving
// order.
func Filter(pool []domain.Word, c domain.Clue) []domain.Word {
	out := make([]domain.Word, 0, len(pool))
	for _, w := range pool {
		if Possible(w, c) {
			out = append(out, w)
		}
	}
	return out
}

func inSet(set []byte, b byte) bool {
	for _, v := range set {
		if v == b {
			return true
		}
	}
	return false
}
