package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"svw.info/wordle/internal/domain"
)

var (
	tileGreen  = color.New(color.BgGreen, color.FgBlack)
	tileYellow = color.New(color.BgYellow, color.FgBlack)
	tileGray   = color.New(color.BgHiBlack, color.FgWhite)
)

// renderTiles prints a word as Wordle-style colored tiles.
func renderTiles(word domain.Word, colors domain.CellColors) string {
	var b strings.Builder
	for i := 0; i < domain.WordLen; i++ {
		cell := fmt.Sprintf(" %c ", word[i]-'a'+'A')
		switch colors[i] {
		case domain.ColorCorrect:
			b.WriteString(tileGreen.Sprint(cell))
		case domain.ColorPresent:
			b.WriteString(tileYellow.Sprint(cell))
		default:
			b.WriteString(tileGray.Sprint(cell))
		}
	}
	return b.String()
}

func renderStars(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func renderPlay(p domain.PlayAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s  %s\n", renderTiles(p.Guess, p.Colors), renderStars(p.QualityStars()), p.Luck)
	if p.AvgRemaining != nil {
		fmt.Fprintf(&b, "    avg remaining %.2f (common %.2f), actually left %d\n",
			p.AvgRemaining.All, p.AvgRemaining.Common, p.RemainingAll())
	} else {
		fmt.Fprintf(&b, "    not in dictionary, actually left %d\n", p.RemainingAll())
	}
	for _, v := range p.HardModeViolations {
		fmt.Fprintf(&b, "    hard mode: %s\n", v)
	}
	for _, u := range p.UnusedClues {
		fmt.Fprintf(&b, "    wasted: %s\n", u)
	}
	return b.String()
}

// drainProgress feeds a terminal progress bar from the orchestrator's
// progress stream until the stream closes. Returns a channel that closes
// when drawing is done.
func drainProgress(progress <-chan domain.Progress) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		bar := progressbar.NewOptions(1,
			progressbar.OptionSetDescription("analyzing"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionShowCount(),
		)
		max := 1
		for p := range progress {
			if p.Total != max && p.Total > 0 {
				max = p.Total
				bar.ChangeMax(max)
			}
			_ = bar.Set(p.Done)
		}
		_ = bar.Clear()
	}()
	return done
}
