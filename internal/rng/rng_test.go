package rng

import "testing"

func TestWeightedEmpty(t *testing.T) {
	s := New(1)
	if _, ok := Weighted(s, []Choice[string](nil)); ok {
		t.Error("empty choice list should yield no selection")
	}
	if _, ok := Weighted(s, []Choice[string]{{Item: "a", Weight: 0}}); ok {
		t.Error("zero total weight should yield no selection")
	}
}

func TestWeightedProportions(t *testing.T) {
	s := New(7)
	choices := []Choice[string]{
		{Item: "common", Weight: 9},
		{Item: "rare", Weight: 1},
	}
	counts := map[string]int{}
	const trials = 10000
	for i := 0; i < trials; i++ {
		item, ok := Weighted(s, choices)
		if !ok {
			t.Fatal("expected a selection")
		}
		counts[item]++
	}
	if counts["common"] < 8500 || counts["common"] > 9500 {
		t.Errorf("common drawn %d of %d, want roughly 9000", counts["common"], trials)
	}
	if counts["rare"] == 0 {
		t.Error("rare never drawn over 10000 trials")
	}
}

func TestWeightedSingle(t *testing.T) {
	s := New(3)
	item, ok := Weighted(s, []Choice[int]{{Item: 42, Weight: 5}})
	if !ok || item != 42 {
		t.Errorf("single choice: got (%d, %v)", item, ok)
	}
}

func TestPick(t *testing.T) {
	s := New(11)
	if _, ok := Pick(s, []string(nil)); ok {
		t.Error("empty list should yield no pick")
	}
	seen := map[string]bool{}
	items := []string{"a", "b", "c"}
	for i := 0; i < 200; i++ {
		item, ok := Pick(s, items)
		if !ok {
			t.Fatal("expected a pick")
		}
		seen[item] = true
	}
	if len(seen) != 3 {
		t.Errorf("200 picks covered %d of 3 items", len(seen))
	}
}

func TestGaussianRange(t *testing.T) {
	s := New(99)
	sum := 0.0
	const trials = 20000
	for i := 0; i < trials; i++ {
		v := s.Gaussian()
		if v < 0 || v > 1 {
			t.Fatalf("Gaussian out of range: %f", v)
		}
		sum += v
	}
	mean := sum / trials
	if mean < 0.45 || mean > 0.55 {
		t.Errorf("mean %f, want near 0.5", mean)
	}
}

func TestDeterministicForSeed(t *testing.T) {
	a, b := New(5), New(5)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("same seed should produce same sequence")
		}
	}
}
