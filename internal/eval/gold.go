package eval

// Gold is the reference word-to-meaning mapping used for scoring only.
type Gold map[string]string

// Lookup returns the correct meaning for word. Words outside the gold standard
// have no correct meaning.
func (g Gold) Lookup(word string) (string, bool) {
	m, ok := g[word]
	return m, ok
}

func (g Gold) Size() int { return len(g) }

// FrankGold is the reference mapping for the Frank et al. mother-infant corpus.
func FrankGold() Gold {
	return Gold{
		"baby": "BABY", "bigbird": "BIRD", "bird": "DUCK",
		"moocows": "COW", "cows": "COW", "eyes": "EYES", "books": "BOOK",
		"duckie": "DUCK", "hand": "HAND", "kitty": "CAT", "kittycats": "CAT",
		"ring": "RING", "piggies": "PIG", "pig": "PIG", "lambie": "LAMB",
		"sheep": "LAMB", "birdie": "DUCK", "bear": "BEAR", "bigbirds": "BIRD",
		"moocow": "COW", "cow": "COW", "bunny": "BUNNY", "book": "BOOK",
		"duck": "DUCK", "hat": "HAT", "kittycat": "CAT", "lamb": "LAMB",
		"rings": "RING", "rattle": "RATTLE", "piggie": "PIG", "rabbit": "BUNNY",
		"bunnies": "BUNNY", "mirror": "MIRROR", "bottle": "BOTTLE",
	}
}
