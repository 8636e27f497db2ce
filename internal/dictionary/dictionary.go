// Package dictionary loads and serves the two disjoint word lists that form
// the guess universe: a "common" pool of likely answers and an "other" pool
// of valid but unlikely words.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"svw.info/wordle/internal/domain"
)

//go:embed common.txt
var embeddedCommon string

//go:embed other.txt
var embeddedOther string

// Dictionary is the read-only word universe shared by every analysis.
type Dictionary struct {
	common []domain.Word
	other  []domain.Word
	all    []domain.Word

	index     map[domain.Word]int // position in all
	commonSet *bitset.BitSet      // bit i set when all[i] is common
}

// New builds a dictionary from the two pools. Words must be valid five-letter
// lowercase strings and the pools must be disjoint.
func New(common, other []domain.Word) (*Dictionary, error) {
	d := &Dictionary{
		common:    common,
		other:     other,
		all:       make([]domain.Word, 0, len(common)+len(other)),
		index:     make(map[domain.Word]int, len(common)+len(other)),
		commonSet: bitset.New(uint(len(common) + len(other))),
	}
	for _, w := range common {
		if err := d.add(w, true); err != nil {
			return nil, err
		}
	}
	for _, w := range other {
		if err := d.add(w, false); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dictionary) add(w domain.Word, common bool) error {
	if !w.Valid() {
		return fmt.Errorf("invalid dictionary word %q", w)
	}
	if _, dup := d.index[w]; dup {
		return fmt.Errorf("duplicate dictionary word %q", w)
	}
	i := len(d.all)
	d.index[w] = i
	d.all = append(d.all, w)
	if common {
		d.commonSet.Set(uint(i))
	}
	return nil
}

// Load returns the dictionary built from the embedded word lists.
func Load() (*Dictionary, error) {
	common, err := readWords(strings.NewReader(embeddedCommon))
	if err != nil {
		return nil, fmt.Errorf("embedded common list: %w", err)
	}
	other, err := readWords(strings.NewReader(embeddedOther))
	if err != nil {
		return nil, fmt.Errorf("embedded other list: %w", err)
	}
	return New(common, other)
}

// LoadFiles builds a dictionary from replacement list files.
func LoadFiles(commonPath, otherPath string) (*Dictionary, error) {
	common, err := readWordFile(commonPath)
	if err != nil {
		return nil, err
	}
	other, err := readWordFile(otherPath)
	if err != nil {
		return nil, err
	}
	return New(common, other)
}

func readWordFile(path string) ([]domain.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	words, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

func readWords(r io.Reader) ([]domain.Word, error) {
	sc := bufio.NewScanner(r)
	words := make([]domain.Word, 0, 1<<10)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			words = append(words, domain.Word(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return words, nil
}

// Common returns the common pool. Callers must not mutate it.
func (d *Dictionary) Common() []domain.Word { return d.common }

// Other returns the other pool. Callers must not mutate it.
func (d *Dictionary) Other() []domain.Word { return d.other }

// All returns common followed by other. Callers must not mutate it.
func (d *Dictionary) All() []domain.Word { return d.all }

// Len is the total word count.
func (d *Dictionary) Len() int { return len(d.all) }

// Contains reports dictionary membership.
func (d *Dictionary) Contains(w domain.Word) bool {
	_, ok := d.index[w]
	return ok
}

// IsCommon reports whether w belongs to the common pool.
func (d *Dictionary) IsCommon(w domain.Word) bool {
	i, ok := d.index[w]
	return ok && d.commonSet.Test(uint(i))
}

// Invalid returns the subset of words that are malformed or outside the
// dictionary, preserving order.
func (d *Dictionary) Invalid(words []domain.Word) []domain.Word {
	var out []domain.Word
	for _, w := range words {
		if !w.Valid() || !d.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}
