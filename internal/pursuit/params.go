package pursuit

// Params are the learning constants shared by the update rule and the lexicon
// threshold test.
type Params struct {
	// Gamma is the learning rate used for initialization, reward and penalty.
	Gamma float64
	// Lambda smooths the lexicon probability estimate.
	Lambda float64
	// Tau is the probability a meaning must exceed to enter the lexicon.
	Tau float64
}

func DefaultParams() Params {
	return Params{
		Gamma:  0.01,
		Lambda: 0.001,
		Tau:    0.69,
	}
}

// Reward moves s toward 1 by a fraction gamma of the remaining distance.
func Reward(s, gamma float64) float64 {
	return s + gamma*(1-s)
}

// Penalize decays s toward 0 by a fraction gamma.
func Penalize(s, gamma float64) float64 {
	return s * (1 - gamma)
}
