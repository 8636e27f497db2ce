package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/wordle/internal/domain"
)

var (
	poolCommon = []domain.Word{"light", "night", "fight", "sight"}
	poolOther  = []domain.Word{"crane", "roate", "blimp", "dunks"}
)

func isCommonTest(w domain.Word) bool {
	for _, c := range poolCommon {
		if c == w {
			return true
		}
	}
	return false
}

func allWords() []domain.Word {
	return append(append([]domain.Word{}, poolCommon...), poolOther...)
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestAveragesSortedAndComplete(t *testing.T) {
	p := NewPool(3, isCommonTest, nil)
	defer p.Close()

	guesses := allWords()
	got, stats, err := p.Averages(testCtx(t), guesses, poolCommon, poolOther, nil)
	if err != nil {
		t.Fatalf("Averages: %v", err)
	}
	if len(got) != len(guesses) {
		t.Fatalf("got %d averages for %d guesses", len(got), len(guesses))
	}
	for i := 1; i < len(got); i++ {
		if got[i].All < got[i-1].All {
			t.Fatalf("results not sorted ascending at %d: %v then %v", i, got[i-1].All, got[i].All)
		}
	}
	if stats.Comparisons == 0 {
		t.Fatal("expected a nonzero comparison count")
	}
	seen := make(map[domain.Word]bool, len(got))
	for _, a := range got {
		seen[a.Word] = true
	}
	for _, g := range guesses {
		if !seen[g] {
			t.Fatalf("guess %q missing from merged results", g)
		}
	}
}

// Unit count must not change the merged result.
func TestAveragesIndependentOfPoolSize(t *testing.T) {
	guesses := allWords()
	var first []domain.GuessAverage
	for _, size := range []int{1, 2, 5, 16} {
		p := NewPool(size, isCommonTest, nil)
		got, _, err := p.Averages(testCtx(t), guesses, poolCommon, poolOther, nil)
		p.Close()
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if first == nil {
			first = got
			continue
		}
		if len(got) != len(first) {
			t.Fatalf("size %d: %d results, want %d", size, len(got), len(first))
		}
		for i := range got {
			if got[i] != first[i] {
				t.Fatalf("size %d: result[%d] = %+v, want %+v", size, i, got[i], first[i])
			}
		}
	}
}

func TestAveragesProgress(t *testing.T) {
	p := NewPool(2, isCommonTest, nil)
	defer p.Close()

	progress := make(chan domain.Progress, 256)
	guesses := allWords()
	_, _, err := p.Averages(testCtx(t), guesses, poolCommon, poolOther, progress)
	if err != nil {
		t.Fatalf("Averages: %v", err)
	}

	total := len(guesses) * (len(poolCommon) + len(poolOther))
	var last domain.Progress
	n := 0
	for {
		select {
		case pr := <-progress:
			if pr.Total != total {
				t.Fatalf("progress total = %d, want %d", pr.Total, total)
			}
			if pr.Done < last.Done {
				t.Fatalf("progress went backwards: %d after %d", pr.Done, last.Done)
			}
			last = pr
			n++
			continue
		default:
		}
		break
	}
	if n == 0 {
		t.Fatal("no progress reports received")
	}
	if last.Done != total {
		t.Fatalf("final progress = %d/%d, want completion", last.Done, total)
	}
}

func TestAveragesCancelled(t *testing.T) {
	p := NewPool(2, isCommonTest, nil)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, _, err := p.Averages(ctx, allWords(), poolCommon, poolOther, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got != nil {
		t.Fatalf("cancelled request delivered a result: %v", got)
	}

	// The pool must recover with fresh units on the next request.
	again, _, err := p.Averages(testCtx(t), allWords(), poolCommon, poolOther, nil)
	if err != nil {
		t.Fatalf("request after cancellation: %v", err)
	}
	if len(again) != len(allWords()) {
		t.Fatalf("got %d averages after respawn, want %d", len(again), len(allWords()))
	}
}

func TestAveragesWorkerPanic(t *testing.T) {
	panicky := func(domain.Word) bool { panic("boom") }
	p := NewPool(2, panicky, nil)
	defer p.Close()

	_, _, err := p.Averages(testCtx(t), allWords(), poolCommon, poolOther, nil)
	if !errors.Is(err, ErrWorkerFailure) {
		t.Fatalf("err = %v, want ErrWorkerFailure", err)
	}
}

func TestCloseThenReuse(t *testing.T) {
	p := NewPool(2, isCommonTest, nil)
	if _, _, err := p.Averages(testCtx(t), allWords(), poolCommon, poolOther, nil); err != nil {
		t.Fatalf("first request: %v", err)
	}
	p.Close()
	if _, _, err := p.Averages(testCtx(t), allWords(), poolCommon, poolOther, nil); err != nil {
		t.Fatalf("request after Close: %v", err)
	}
	p.Close()
}

func TestSplitBatches(t *testing.T) {
	words := allWords() // 8 words
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{8}},
		{3, []int{3, 3, 2}},
		{8, []int{1, 1, 1, 1, 1, 1, 1, 1}},
		{10, []int{1, 1, 1, 1, 1, 1, 1, 1, 0, 0}},
	}
	for _, tc := range tests {
		got := splitBatches(words, tc.n)
		if len(got) != len(tc.want) {
			t.Fatalf("n=%d: %d batches, want %d", tc.n, len(got), len(tc.want))
		}
		at := 0
		for i, b := range got {
			if len(b) != tc.want[i] {
				t.Fatalf("n=%d: batch %d has %d words, want %d", tc.n, i, len(b), tc.want[i])
			}
			for _, w := range b {
				if w != words[at] {
					t.Fatalf("n=%d: batches reorder input at %d", tc.n, at)
				}
				at++
			}
		}
	}
}
