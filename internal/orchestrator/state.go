package orchestrator

import "errors"

// State is the phase an analysis request is in. Terminal states stick until
// the next request begins.
type State int

const (
	StateIdle State = iota
	StateComputingClueColors
	StateComputingUserTurns
	StateComputingAIPlaythrough
	StateComplete
	StateAborted
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateComputingClueColors:
		return "computing-clue-colors"
	case StateComputingUserTurns:
		return "computing-user-turns"
	case StateComputingAIPlaythrough:
		return "computing-ai-playthrough"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	case StateErrored:
		return "errored"
	default:
		return "idle"
	}
}

var (
	// ErrWordLength rejects a guess or answer that is not exactly five
	// lowercase letters, before any computation starts.
	ErrWordLength = errors.New("word must be exactly five lowercase letters")

	// ErrNotInDictionary rejects an answer outside the dictionary. Guesses
	// outside the dictionary are analyzed anyway, just without averages.
	ErrNotInDictionary = errors.New("word not in dictionary")
)
