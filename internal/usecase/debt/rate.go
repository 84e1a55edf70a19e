package debt

// Rate bounds. The rate is a fraction (0.12 = 12%): it never reaches zero
// and never exceeds 95%.
const (
	RateFloor = 0.001
	RateCap   = 0.95
)

// NextRate computes a listing's interest rate after an investment has been
// added to its running total. ratio = total invested / funding target; the
// less funded a listing is, the harder its rate is pushed up to attract
// investors, and once the target is overshot the rate drops sharply.
//
// Buckets are half-open [lo, hi) on ratio. Pure function: no side effects,
// defined for every non-negative total/target.
func NextRate(current float64, totalInvestedCents, targetCents int64) float64 {
	if targetCents < 1 {
		targetCents = 1
	}
	ratio := float64(totalInvestedCents) / float64(targetCents)

	var delta float64
	switch {
	case ratio < 0.01:
		delta = +0.20
	case ratio < 0.05:
		delta = +0.12
	case ratio < 0.2:
		delta = +0.06
	case ratio < 0.5:
		delta = +0.02
	case ratio < 1.0:
		delta = -0.03
	case ratio < 1.5:
		delta = -0.12
	default:
		delta = -0.30
	}

	next := current + delta
	if next < RateFloor {
		return RateFloor
	}
	if next > RateCap {
		return RateCap
	}
	return next
}
