package debt

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNextRate_Buckets(t *testing.T) {
	// target 100000 cents throughout; current rate 0.50 keeps every
	// delta inside the clamp window
	const target = 100_000
	cases := []struct {
		name     string
		invested int64
		want     float64
	}{
		{"badly underfunded", 500, 0.70},         // ratio 0.005 → +0.20
		{"under 5 percent", 2_000, 0.62},         // ratio 0.02 → +0.12
		{"under 20 percent", 10_000, 0.56},       // ratio 0.10 → +0.06
		{"under half", 30_000, 0.52},             // ratio 0.30 → +0.02
		{"over half", 70_000, 0.47},              // ratio 0.70 → −0.03
		{"target reached", 100_000, 0.38},        // ratio 1.0 → −0.12
		{"under one and a half", 120_000, 0.38},  // ratio 1.2 → −0.12
		{"target overshot", 150_000, 0.20},       // ratio 1.5 → −0.30
		{"far past target", 1_000_000, 0.20},     // ratio 10 → −0.30
	}
	for _, c := range cases {
		got := NextRate(0.50, c.invested, target)
		if !almostEqual(got, c.want) {
			t.Errorf("%s: NextRate(0.50, %d, %d) = %v, want %v", c.name, c.invested, target, got, c.want)
		}
	}
}

func TestNextRate_BucketBoundaries(t *testing.T) {
	// buckets are half-open [lo, hi): the boundary belongs to the upper bucket
	const target = 100_000
	cases := []struct {
		invested int64
		want     float64
	}{
		{1_000, 0.62},   // ratio exactly 0.01 → +0.12, not +0.20
		{5_000, 0.56},   // ratio exactly 0.05 → +0.06
		{20_000, 0.52},  // ratio exactly 0.2 → +0.02
		{50_000, 0.47},  // ratio exactly 0.5 → −0.03
		{100_000, 0.38}, // ratio exactly 1.0 → −0.12
		{150_000, 0.20}, // ratio exactly 1.5 → −0.30
	}
	for _, c := range cases {
		got := NextRate(0.50, c.invested, target)
		if !almostEqual(got, c.want) {
			t.Errorf("NextRate(0.50, %d, %d) = %v, want %v", c.invested, target, got, c.want)
		}
	}
}

func TestNextRate_Clamps(t *testing.T) {
	// underfunded listing already near the cap
	if got := NextRate(0.90, 500, 100_000); !almostEqual(got, RateCap) {
		t.Errorf("cap: got %v, want %v", got, RateCap)
	}
	// overshot listing already near the floor
	if got := NextRate(0.05, 200_000, 100_000); !almostEqual(got, RateFloor) {
		t.Errorf("floor: got %v, want %v", got, RateFloor)
	}
	// result always inside [floor, cap]
	for _, invested := range []int64{0, 1, 999, 50_000, 100_000, 10_000_000} {
		for _, cur := range []float64{RateFloor, 0.10, 0.50, RateCap} {
			got := NextRate(cur, invested, 100_000)
			if got < RateFloor || got > RateCap {
				t.Fatalf("NextRate(%v, %d, _) = %v outside [%v, %v]", cur, invested, got, RateFloor, RateCap)
			}
		}
	}
}

func TestNextRate_ZeroTarget(t *testing.T) {
	// target is floored at 1 cent; no division by zero
	got := NextRate(0.10, 100, 0)
	// ratio 100/1 = 100 → −0.30, clamped to floor
	if !almostEqual(got, RateFloor) {
		t.Errorf("got %v, want %v", got, RateFloor)
	}
}

func TestNextRate_Deterministic(t *testing.T) {
	a := NextRate(0.42, 31_337, 90_000)
	for i := 0; i < 100; i++ {
		if b := NextRate(0.42, 31_337, 90_000); b != a {
			t.Fatalf("non-deterministic: %v vs %v", a, b)
		}
	}
}

// Underfunded listings never end up with a lower rate than more-funded
// ones, all else equal.
func TestNextRate_MonotonicDirection(t *testing.T) {
	const target = 100_000
	investedSteps := []int64{0, 500, 2_000, 10_000, 30_000, 70_000, 100_000, 120_000, 150_000, 500_000}
	for _, cur := range []float64{0.10, 0.50, 0.90} {
		prev := math.Inf(1)
		for _, invested := range investedSteps {
			got := NextRate(cur, invested, target)
			if got > prev {
				t.Errorf("current=%v: rate rose from %v to %v as funding grew to %d", cur, prev, got, invested)
			}
			prev = got
		}
	}
}

// The walkthrough from the product brief: 100000-cent listing at 10%,
// a 500-cent investment then a 99500-cent one.
func TestNextRate_TwoInvestorScenario(t *testing.T) {
	rate := 0.10
	total := int64(0)
	const target = 100_000

	total += 500 // ratio 0.005
	rate = NextRate(rate, total, target)
	if !almostEqual(rate, 0.30) {
		t.Fatalf("after first investment: rate = %v, want 0.30", rate)
	}

	total += 99_500 // ratio exactly 1.0 → upper bucket, −0.12
	rate = NextRate(rate, total, target)
	if !almostEqual(rate, 0.18) {
		t.Fatalf("after second investment: rate = %v, want 0.18", rate)
	}
}
