package pursuit

// Entry is one learned word-meaning pair.
type Entry struct {
	Word    string
	Meaning string
}

type Lexicon []Entry

// Probability is the smoothed estimate that strength s, out of a word's total,
// names its meaning among m candidates.
func Probability(s, total float64, m int, lambda float64) float64 {
	return (s + lambda) / (total + float64(m)*lambda)
}

// BuildLexicon emits every (word, meaning) whose smoothed probability exceeds
// tau, walking words in store order and meanings in vocabulary order.
func BuildLexicon(s *Store, p Params) Lexicon {
	var lex Lexicon
	m := s.Len()
	for _, w := range s.words {
		v := s.strengths[w]
		total := s.Sum(w)
		for idx, strength := range v {
			if Probability(strength, total, m, p.Lambda) > p.Tau {
				lex = append(lex, Entry{Word: w, Meaning: s.meanings[idx]})
			}
		}
	}
	return lex
}
