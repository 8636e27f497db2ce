package clue

import (
	"testing"

	"svw.info/wordle/internal/domain"
)

func TestGenerateBasics(t *testing.T) {
	tests := []struct {
		name    string
		answer  domain.Word
		guess   domain.Word
		greens  [domain.WordLen]byte
		yellows [domain.WordLen]byte
		absent  string
	}{
		{
			name:   "all green",
			answer: "light", guess: "light",
			greens: [5]byte{'l', 'i', 'g', 'h', 't'},
		},
		{
			name:   "shared suffix",
			answer: "light", guess: "night",
			greens: [5]byte{0, 'i', 'g', 'h', 't'},
			absent: "n",
		},
		{
			name:   "nothing shared",
			answer: "crane", guess: "south",
			absent: "south",
		},
		{
			name:   "yellow letters",
			answer: "crane", guess: "nacre",
			greens:  [5]byte{0, 0, 0, 0, 'e'},
			yellows: [5]byte{'n', 'a', 'c', 'r', 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Generate(tc.answer, tc.guess)
			if c.PositionalMatches != tc.greens {
				t.Fatalf("greens = %v, want %v", c.PositionalMatches, tc.greens)
			}
			if c.PositionalNotMatches != tc.yellows {
				t.Fatalf("yellows = %v, want %v", c.PositionalNotMatches, tc.yellows)
			}
			if got := string(c.MustNotContain); got != tc.absent {
				t.Fatalf("absent = %q, want %q", got, tc.absent)
			}
		})
	}
}

// A repeated guess letter claims only as many occurrences as the answer still
// has after greens; the extras land in MustNotContain.
func TestGenerateDuplicateLetters(t *testing.T) {
	c := Generate("sassy", "assss")

	wantGreens := [5]byte{0, 0, 's', 's', 0}
	if c.PositionalMatches != wantGreens {
		t.Fatalf("greens = %v, want %v", c.PositionalMatches, wantGreens)
	}
	wantYellows := [5]byte{'a', 's', 0, 0, 0}
	if c.PositionalNotMatches != wantYellows {
		t.Fatalf("yellows = %v, want %v", c.PositionalNotMatches, wantYellows)
	}
	if got := string(c.AdditionalRequired); got != "as" {
		t.Fatalf("required = %q, want %q", got, "as")
	}
	// The fourth 's' exceeds the answer's count, so 's' is simultaneously
	// required (once, elsewhere) and capped.
	if got := string(c.MustNotContain); got != "s" {
		t.Fatalf("absent = %q, want %q", got, "s")
	}
}

func TestPossible(t *testing.T) {
	c := Generate("light", "night") // i,g,h,t green; n absent

	tests := []struct {
		candidate domain.Word
		want      bool
	}{
		{"light", true},
		{"fight", true},
		{"sight", true},
		{"night", false}, // contains the ruled-out n
		{"eight", true},
		{"crane", false}, // greens unmet
	}
	for _, tc := range tests {
		if got := Possible(tc.candidate, c); got != tc.want {
			t.Errorf("Possible(%q) = %v, want %v", tc.candidate, got, tc.want)
		}
	}
}

// A letter can be required once and forbidden as an extra occurrence at the
// same time. Candidates must contain exactly the required count, which is why
// the required check runs before the must-not-contain check.
func TestPossibleDuplicateCap(t *testing.T) {
	c := Generate("sassy", "assss")

	tests := []struct {
		candidate domain.Word
		want      bool
		reason    string
	}{
		{"sassy", true, "the answer satisfies its own clue"},
		{"sasss", false, "one s more than the clue allows"},
		{"sessy", false, "required a is missing"},
		{"asset", false, "a replayed where it is known wrong"},
	}
	for _, tc := range tests {
		if got := Possible(tc.candidate, c); got != tc.want {
			t.Errorf("Possible(%q) = %v, want %v (%s)", tc.candidate, got, tc.want, tc.reason)
		}
	}
}

// Property: for every (answer, guess) pair over a small pool, the answer
// itself always satisfies the generated clue.
func TestAnswerSatisfiesOwnClue(t *testing.T) {
	pool := []domain.Word{
		"light", "night", "fight", "sight", "sassy",
		"crane", "roate", "blimp", "assss", "eerie",
	}
	for _, answer := range pool {
		for _, guess := range pool {
			c := Generate(answer, guess)
			if !Possible(answer, c) {
				t.Fatalf("answer %q fails its own clue for guess %q: %+v", answer, guess, c)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	pool := []domain.Word{"light", "night", "fight", "sight", "crane"}
	c := Generate("light", "tight") // i,g,h,t green, t (extra) absent

	got := Filter(pool, c)
	want := []domain.Word{"light", "night", "fight", "sight"}
	if len(got) != len(want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Filter[%d] = %q, want %q (order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestPossibleAll(t *testing.T) {
	clues := []domain.Clue{
		Generate("light", "crane"),
		Generate("light", "tight"),
	}
	if !PossibleAll("light", clues) {
		t.Fatal("answer must satisfy all of its own clues")
	}
	if PossibleAll("crane", clues) {
		t.Fatal(`"crane" should be excluded by its own clue`)
	}
}
