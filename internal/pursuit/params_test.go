package pursuit

import "testing"

func TestReward_BoundedIncrease(t *testing.T) {
	for _, gamma := range []float64{0.001, 0.01, 0.5, 0.99} {
		for _, s := range []float64{0, 0.01, 0.3, 0.69, 0.999} {
			got := Reward(s, gamma)
			if !(got > s && got < 1) {
				t.Errorf("Reward(%v, %v) = %v, want in (%v, 1)", s, gamma, got, s)
			}
		}
	}
}

func TestPenalize_BoundedDecrease(t *testing.T) {
	for _, gamma := range []float64{0.001, 0.01, 0.5, 0.99} {
		for _, s := range []float64{0.0001, 0.01, 0.3, 1} {
			got := Penalize(s, gamma)
			if !(got < s && got > 0) {
				t.Errorf("Penalize(%v, %v) = %v, want in (0, %v)", s, gamma, got, s)
			}
		}
		if got := Penalize(0, gamma); got != 0 {
			t.Errorf("Penalize(0, %v) = %v, want 0", gamma, got)
		}
	}
}
