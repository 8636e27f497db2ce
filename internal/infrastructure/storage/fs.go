// Package storage persists analysis reports as JSON files, bucketed by
// answer word.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/wordle/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(r *domain.Report) string {
	return filepath.Join(s.dir, string(r.Answer), strings.TrimSpace(r.ID)+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.Report) error {
	if r == nil || r.ID == "" {
		return errors.New("invalid report: missing ID")
	}
	target := s.pathFor(r)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Report, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, e.Name(), id+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Report
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.ReportMeta, error) {
	var out []domain.ReportMeta
	buckets, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	for _, b := range buckets {
		if !b.IsDir() {
			continue
		}
		ents, err := os.ReadDir(filepath.Join(s.dir, b.Name()))
		if err != nil {
			continue
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, b.Name(), e.Name()))
			if err != nil {
				continue
			}
			var r domain.Report
			if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
				continue
			}
			out = append(out, domain.ReportMeta{
				ID:        r.ID,
				Answer:    r.Answer,
				UserTurns: r.Summary.UserTurns,
				Solved:    r.Summary.Solved,
				CreatedAt: r.CreatedAt,
			})
		}
	}
	return out, nil
}
