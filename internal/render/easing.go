package render

// BounceOut is the classic bounce-out easing curve. Input above 1 saturates
// at 1.
func BounceOut(t float64) float64 {
	const (
		a = 4.0 / 11.0
		b = 8.0 / 11.0
		c = 9.0 / 10.0

		ca = 4356.0 / 361.0
		cb = 35442.0 / 1805.0
		cc = 16061.0 / 1805.0
	)

	if t <= 0 {
		return 0
	}
	t2 := t * t
	switch {
	case t < a:
		return 7.5625 * t2
	case t < b:
		return 9.075*t2 - 9.9*t + 3.4
	case t < c:
		return ca*t2 - cb*t + cc
	case t > 1:
		return 1
	default:
		return 10.8*t2 - 20.52*t + 10.72
	}
}

// Smoothstep is the Hermite interpolation between edges e0 and e1.
func Smoothstep(e0, e1, t float64) float64 {
	if e1 == e0 {
		if t < e0 {
			return 0
		}
		return 1
	}
	x := (t - e0) / (e1 - e0)
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return x * x * (3 - 2*x)
}

// Wobble maps a cell's animation phase to its quad scale: births bounce in
// from 0 to 1, deaths shrink from 1 to 0 over the first half of the cycle.
func Wobble(alive bool, phase float64) float64 {
	if alive {
		return BounceOut(phase * 1.2)
	}
	return 1 - Smoothstep(0, 0.5, phase)
}
