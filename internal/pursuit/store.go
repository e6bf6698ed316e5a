package pursuit

import (
	"errors"
	"fmt"
)

var ErrUnknownWord = errors.New("word not in vocabulary")

// Store holds one association strength per (word, meaning) pair.
// Words keep their load order; meanings are indexed by vocabulary position.
type Store struct {
	words     []string
	meanings  []string
	index     map[string]int
	strengths map[string][]float64
}

func NewStore(words, meanings []string) *Store {
	s := &Store{
		index:     make(map[string]int, len(meanings)),
		strengths: make(map[string][]float64, len(words)),
	}
	for _, m := range meanings {
		if _, ok := s.index[m]; ok {
			continue
		}
		s.index[m] = len(s.meanings)
		s.meanings = append(s.meanings, m)
	}
	for _, w := range words {
		if _, ok := s.strengths[w]; ok {
			continue
		}
		s.words = append(s.words, w)
		s.strengths[w] = make([]float64, len(s.meanings))
	}
	return s
}

// Reset zeroes every strength.
func (s *Store) Reset() {
	for _, v := range s.strengths {
		clear(v)
	}
}

func (s *Store) Words() []string    { return s.words }
func (s *Store) Meanings() []string { return s.meanings }
func (s *Store) Len() int           { return len(s.meanings) }

func (s *Store) Known(word string) bool {
	_, ok := s.strengths[word]
	return ok
}

// Index returns the vocabulary position of meaning, or -1.
func (s *Store) Index(meaning string) int {
	if i, ok := s.index[meaning]; ok {
		return i
	}
	return -1
}

func (s *Store) Get(word string, idx int) float64 {
	v, ok := s.strengths[word]
	if !ok {
		return 0
	}
	return v[idx]
}

func (s *Store) Set(word string, idx int, strength float64) error {
	v, ok := s.strengths[word]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	v[idx] = strength
	return nil
}

// Strengths returns the live strength vector of word. Callers must not retain it
// across updates.
func (s *Store) Strengths(word string) []float64 {
	return s.strengths[word]
}

func (s *Store) Sum(word string) float64 {
	var total float64
	for _, v := range s.strengths[word] {
		total += v
	}
	return total
}

// Best returns the highest strength any word holds for the meaning at idx.
func (s *Store) Best(idx int) float64 {
	var best float64
	for _, w := range s.words {
		if v := s.strengths[w][idx]; v > best {
			best = v
		}
	}
	return best
}

// Dominant returns the meaning with the highest strength for word, with ties
// resolved to the lowest index. ok is false when the word has never been
// updated.
func (s *Store) Dominant(word string) (meaning string, ok bool) {
	v := s.strengths[word]
	best := -1
	for i, strength := range v {
		if strength > 0 && (best < 0 || strength > v[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return s.meanings[best], true
}
