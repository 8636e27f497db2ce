package clue

import (
	"fmt"

	"svw.info/wordle/internal/domain"
)

// Violations lists the hard-mode rules a guess breaks against the clues
// accumulated before it: every green must be replayed in place and every
// required letter must appear somewhere in the guess.
func Violations(guess domain.Word, prior []domain.Clue) []string {
	var out []string
	for _, c := range prior {
		for i := 0; i < domain.WordLen; i++ {
			if m := c.PositionalMatches[i]; m != 0 && guess[i] != m {
				out = appendOnce(out, fmt.Sprintf("%q must be played in position %d", string(m), i+1))
			}
		}

		// Spare guess letters are the ones not spent on a green slot.
		var spare [26]int8
		for i := 0; i < domain.WordLen; i++ {
			if c.PositionalMatches[i] != guess[i] {
				spare[guess[i]-'a']++
			}
		}
		for _, b := range c.AdditionalRequired {
			if spare[b-'a'] > 0 {
				spare[b-'a']--
				continue
			}
			out = appendOnce(out, fmt.Sprintf("%q must be used", string(b)))
		}
	}
	return out
}

// Unused lists clue facts the guess wastes without breaking hard mode:
// letters already ruled out entirely, and letters replayed in a slot where
// they are known to be wrong.
func Unused(guess domain.Word, prior []domain.Clue) []string {
	var out []string
	for _, c := range prior {
		for i := 0; i < domain.WordLen; i++ {
			b := guess[i]
			if c.PositionalMatches[i] != 0 {
				continue
			}
			if c.PositionalNotMatches[i] == b {
				out = appendOnce(out, fmt.Sprintf("%q is known wrong in position %d", string(b), i+1))
			} else if inSet(c.MustNotContain, b) {
				out = appendOnce(out, fmt.Sprintf("%q is known absent", string(b)))
			}
		}
	}
	return out
}

func appendOnce(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
