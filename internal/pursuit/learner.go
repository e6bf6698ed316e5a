package pursuit

import (
	"fmt"
	"math/rand"
)

// Utterance pairs the words spoken with the meanings visible in the scene.
type Utterance struct {
	Words    []string
	Meanings []string
}

// Learner runs the Pursuit update over a single store. Each trial owns its
// Learner, store and random source.
type Learner struct {
	store  *Store
	params Params
	rng    *rand.Rand
}

func NewLearner(store *Store, params Params, rng *rand.Rand) *Learner {
	return &Learner{store: store, params: params, rng: rng}
}

func (l *Learner) Store() *Store { return l.store }

// Observe updates every uttered word in order. Utterances without visible
// meanings carry no evidence and are skipped.
func (l *Learner) Observe(u Utterance) error {
	if len(u.Meanings) == 0 {
		return nil
	}
	visible := make([]int, 0, len(u.Meanings))
	for _, m := range u.Meanings {
		idx := l.store.Index(m)
		if idx < 0 {
			return fmt.Errorf("meaning %q not in vocabulary", m)
		}
		visible = append(visible, idx)
	}
	for _, w := range u.Words {
		if !l.store.Known(w) {
			return fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		if l.store.Sum(w) == 0 {
			l.initialize(w, visible)
		}
		l.update(w, visible)
	}
	return nil
}

// initialize assigns gamma to the visible meaning least claimed by any word.
// Ties go to the first such meaning in scene order.
func (l *Learner) initialize(word string, visible []int) {
	chosen := visible[0]
	lowest := l.store.Best(chosen)
	for _, idx := range visible[1:] {
		if b := l.store.Best(idx); b < lowest {
			chosen, lowest = idx, b
		}
	}
	l.store.strengths[word][chosen] = l.params.Gamma
}

func (l *Learner) update(word string, visible []int) {
	v := l.store.strengths[word]
	guess := l.hypothesis(v)
	if contains(visible, guess) {
		v[guess] = Reward(v[guess], l.params.Gamma)
		return
	}
	v[guess] = Penalize(v[guess], l.params.Gamma)
	alt := visible[l.rng.Intn(len(visible))]
	v[alt] = Reward(v[alt], l.params.Gamma)
}

// hypothesis picks uniformly among the meanings tied at the maximum strength.
func (l *Learner) hypothesis(v []float64) int {
	best := v[0]
	for _, s := range v[1:] {
		if s > best {
			best = s
		}
	}
	var ties []int
	for i, s := range v {
		if s == best {
			ties = append(ties, i)
		}
	}
	return ties[l.rng.Intn(len(ties))]
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
