package domain

// WordLen is the fixed length of every guess and answer.
const WordLen = 5

// Word is a five-letter lowercase alphabetic string.
type Word string

// Valid reports whether w is exactly five lowercase letters.
func (w Word) Valid() bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < WordLen; i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Clue is the information revealed by comparing one guess to the answer.
// The four fields partition the five guess-letter occurrences: each occurrence
// is green (PositionalMatches), yellow (PositionalNotMatches plus one entry in
// AdditionalRequired), or definitively absent (MustNotContain), honoring
// letter multiplicity.
type Clue struct {
	// PositionalMatches[i] holds the letter when guess[i] == answer[i], else 0.
	PositionalMatches [WordLen]byte `json:"positionalMatches"`
	// PositionalNotMatches[i] holds guess[i] when it is known wrong at slot i.
	PositionalNotMatches [WordLen]byte `json:"positionalNotMatches"`
	// AdditionalRequired is the multiset of letters known present elsewhere.
	AdditionalRequired []byte `json:"additionalRequired,omitempty"`
	// MustNotContain is the set of letters absent from any unaccounted position.
	MustNotContain []byte `json:"mustNotContain,omitempty"`
}

// Colors derives the five-cell color pattern of a freshly generated clue.
// A slot is green when matched, yellow when it carried a required letter,
// absent otherwise.
func (c Clue) Colors() CellColors {
	var out CellColors
	for i := 0; i < WordLen; i++ {
		switch {
		case c.PositionalMatches[i] != 0:
			out[i] = ColorCorrect
		case c.PositionalNotMatches[i] != 0:
			out[i] = ColorPresent
		default:
			out[i] = ColorAbsent
		}
	}
	return out
}

// CellColors is the visible five-cell pattern of one guess.
type CellColors [WordLen]CellColor

// NumSignatures is the count of distinct five-cell color patterns.
const NumSignatures = 243

// Signature packs the pattern into one of the 3^5 = 243 ternary codes.
// Two answers producing the same signature are indistinguishable to the
// possibility filter, which is what makes the elimination cache sound.
func (cc CellColors) Signature() int {
	sig := 0
	for _, c := range cc {
		sig = sig*3 + int(c)
	}
	return sig
}

// Progress is one cumulative progress report: Done answer passes completed
// out of Total, aggregated across all workers.
type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// GuessAverage holds, for one candidate guess word, the average count of
// answers that would remain after playing it, across every possible true
// answer. Common counts only the common sub-pool; All counts the whole pool.
type GuessAverage struct {
	Word     Word    `json:"word"`
	IsCommon bool    `json:"isCommon"`
	Common   float64 `json:"common"`
	All      float64 `json:"all"`
}

// AvgRemaining is the pair of averages attached to a played guess.
type AvgRemaining struct {
	Common float64 `json:"common"`
	All    float64 `json:"all"`
}

// PlayAnalysis is the evaluation of one played guess against the true answer
// and the clue state accumulated before it.
type PlayAnalysis struct {
	Guess              Word       `json:"guess"`
	Clue               Clue       `json:"clue"`
	Colors             CellColors `json:"colors"`
	Correct            bool       `json:"correct"`
	IsCommon           bool       `json:"isCommon"`
	HardModeViolations []string   `json:"hardModeViolations,omitempty"`
	UnusedClues        []string   `json:"unusedClues,omitempty"`
	// AvgRemaining is nil when the guess is outside the dictionary.
	AvgRemaining    *AvgRemaining `json:"avgRemaining,omitempty"`
	RemainingCommon []Word        `json:"remainingCommon"`
	RemainingOther  []Word        `json:"remainingOther"`
	Luck            Luck          `json:"luck"`
	Quality         float64       `json:"quality"`
}

// RemainingAll is the total candidate count left after this play.
func (p PlayAnalysis) RemainingAll() int {
	return len(p.RemainingCommon) + len(p.RemainingOther)
}

// QualityStars buckets the quality score into 0..5 stars for display and
// share-code packing.
func (p PlayAnalysis) QualityStars() int {
	s := int(p.Quality*5 + 0.5)
	if s < 0 {
		s = 0
	}
	if s > 5 {
		s = 5
	}
	return s
}

// GuessAnalysis is one turn's bundle: the user's play, the AI's alternative
// for the same state, and which of the two was objectively better.
type GuessAnalysis struct {
	CommonBefore int            `json:"commonBefore"`
	OtherBefore  int            `json:"otherBefore"`
	User         PlayAnalysis   `json:"user"`
	AI           PlayAnalysis   `json:"ai"`
	Strategy     Strategy       `json:"strategy"`
	Best         BestPlay       `json:"best"`
	TopGuesses   []GuessAverage `json:"topGuesses,omitempty"`
}

// AIPlay is one step of the independent AI-only playthrough.
type AIPlay struct {
	CommonBefore int          `json:"commonBefore"`
	OtherBefore  int          `json:"otherBefore"`
	Play         PlayAnalysis `json:"play"`
	Strategy     Strategy     `json:"strategy"`
}

// Report is a full analysis of one played game plus the AI playthrough.
type Report struct {
	ID        string          `json:"id,omitempty"`
	Answer    Word            `json:"answer"`
	CreatedAt int64           `json:"createdAt,omitempty"`
	Turns     []GuessAnalysis `json:"turns"`
	AIGame    []AIPlay        `json:"aiGame"`
	Summary   Summary         `json:"summary"`
}

// Summary aggregates a report for listings.
type Summary struct {
	UserTurns   int     `json:"userTurns"`
	AITurns     int     `json:"aiTurns"`
	Solved      bool    `json:"solved"`
	MeanQuality float64 `json:"meanQuality"`
}

// ReportMeta is a lightweight listing entry.
type ReportMeta struct {
	ID        string `json:"id"`
	Answer    Word   `json:"answer"`
	UserTurns int    `json:"userTurns"`
	Solved    bool   `json:"solved"`
	CreatedAt int64  `json:"createdAt"`
}
