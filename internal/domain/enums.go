package domain

// CellColor is one cell of the visible pattern. Values stay in [0,3) so the
// share cipher can pack five of them as ternary digits.
type CellColor int

const (
	ColorAbsent  CellColor = iota // letter not in the word (gray)
	ColorPresent                  // letter elsewhere in the word (yellow)
	ColorCorrect                  // letter in the right spot (green)
)

func (c CellColor) String() string {
	switch c {
	case ColorCorrect:
		return "green"
	case ColorPresent:
		return "yellow"
	default:
		return "absent"
	}
}

// Strategy names the decision branch that produced the AI's chosen guess.
type Strategy string

const (
	StrategyEliminateCommon             Strategy = "eliminate-common"
	StrategyEliminateCommonWithAnswer   Strategy = "eliminate-common-with-answer"
	StrategyFiftyFiftyCommon            Strategy = "50/50-common"
	StrategyPlaySingleCommon            Strategy = "play-single-common"
	StrategyEliminateUncommon           Strategy = "eliminate-uncommon"
	StrategyEliminateUncommonWithAnswer Strategy = "eliminate-uncommon-with-answer"
	StrategyFiftyFiftyUncommon          Strategy = "50/50-uncommon"
	StrategyPlaySingleUncommon          Strategy = "play-single-uncommon"
)

// BestPlay records which of the user's and AI's plays won the turn.
type BestPlay string

const (
	BestUser BestPlay = "user"
	BestAI   BestPlay = "ai"
	BestTie  BestPlay = "tie"
)

// Luck classifies how favorable the actual clue outcome was, on a fixed
// 13-step scale: six unlucky tiers, neutral, six lucky tiers. The index
// stays in [0,13) so the share cipher can pack it as one tridecimal digit.
type Luck int

const (
	LuckInsanelyUnlucky Luck = iota // chance <= 1/1000
	LuckExtremelyUnlucky
	LuckVeryUnlucky
	LuckQuiteUnlucky
	LuckUnlucky
	LuckSlightlyUnlucky
	LuckNeutral
	LuckSlightlyLucky
	LuckLucky
	LuckQuiteLucky
	LuckVeryLucky
	LuckExtremelyLucky
	LuckInsanelyLucky

	NumLuckTiers = 13
)

func (l Luck) String() string {
	names := [NumLuckTiers]string{
		"insanely unlucky", "extremely unlucky", "very unlucky",
		"quite unlucky", "unlucky", "slightly unlucky",
		"neutral",
		"slightly lucky", "lucky", "quite lucky",
		"very lucky", "extremely lucky", "insanely lucky",
	}
	if l < 0 || int(l) >= NumLuckTiers {
		return "neutral"
	}
	return names[l]
}
