package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store holds the results of one analysis run, keyed by benchmark name.
// Iteration follows first-insertion order; overwriting a name keeps its position.
type Store struct {
	order   []string
	results map[string]*Result
}

func NewStore() *Store {
	return &Store{results: make(map[string]*Result)}
}

// Put creates or replaces the result for name. The previous result, if any,
// is discarded rather than merged.
func (s *Store) Put(name string, timeMs float64) *Result {
	if _, ok := s.results[name]; !ok {
		s.order = append(s.order, name)
	}
	r := &Result{Name: name, TimeMs: timeMs}
	s.results[name] = r
	return r
}

func (s *Store) Get(name string) (*Result, bool) {
	r, ok := s.results[name]
	return r, ok
}

func (s *Store) Len() int {
	return len(s.order)
}

// All returns the results in insertion order.
func (s *Store) All() []*Result {
	out := make([]*Result, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.results[name])
	}
	return out
}

// Sorted returns the results ordered by name.
func (s *Store) Sorted() []*Result {
	out := s.All()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// WriteJSON writes the sorted results to path as indented JSON.
func (s *Store) WriteJSON(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(s.Sorted(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
