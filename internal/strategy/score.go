package strategy

import "svw.info/wordle/internal/domain"

// Quality normalizes a played guess's expected elimination against the best
// achievable this turn: 0 means it removed nothing beyond doing nothing,
// 1 means it matched or beat the best available guess.
func Quality(before int, played, best float64) float64 {
	den := float64(before) - best
	if den <= 0 {
		return 1
	}
	q := (float64(before) - played) / den
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1
	}
	return q
}

// luckThresholds map a tail probability to a tier count, tightest first.
var luckThresholds = [...]struct {
	p     float64
	tiers int
}{
	{1.0 / 1000, 6},
	{1.0 / 100, 5},
	{1.0 / 50, 4},
	{1.0 / 10, 3},
	{1.0 / 5, 2},
	{1.0 / 2, 1},
}

// LuckOf rates how favorable the actual outcome was. outcomes holds the
// remaining-after count the played guess would leave for every possible true
// answer; actual is the count the real answer left. The smaller the chance
// of landing in a bucket this small (or this large), the further the rating
// moves from neutral.
func LuckOf(actual int, outcomes []int) domain.Luck {
	if len(outcomes) == 0 {
		return domain.LuckNeutral
	}
	atMost, atLeast := 0, 0
	for _, n := range outcomes {
		if n <= actual {
			atMost++
		}
		if n >= actual {
			atLeast++
		}
	}
	total := float64(len(outcomes))
	pLucky := float64(atMost) / total   // chance of doing at least this well
	pUnlucky := float64(atLeast) / total // chance of doing at least this badly
	if pLucky <= pUnlucky {
		return domain.LuckNeutral + domain.Luck(tierFor(pLucky))
	}
	return domain.LuckNeutral - domain.Luck(tierFor(pUnlucky))
}

func tierFor(p float64) int {
	for _, t := range luckThresholds {
		if p <= t.p {
			return t.tiers
		}
	}
	return 0
}
