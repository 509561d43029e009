package cauchy

import "math"

// PDF evaluates the probability density function of a Cauchy distribution
// with location x0 and scale gamma at x.
//
//	PDF(2, 1, 1)   ≈ 0.159
//	PDF(4, 3, 0.1) ≈ 0.0315
//	PDF(4, 3, 3)   ≈ 0.095
//
// Special cases are:
//
//	PDF(x, x0, gamma) = NaN if any argument is NaN
//	PDF(x, x0, gamma) = NaN if gamma <= 0
//	PDF(±Inf, x0, gamma) = 0 for finite x0
//	PDF(±Inf, ±Inf, gamma) = NaN (same signs)
//	PDF(±Inf, ∓Inf, gamma) = 0
//	PDF(x, x0, +Inf) = 0 for finite x0
//	PDF(x, ±Inf, +Inf) = NaN
func PDF(x, x0, gamma float64) float64 {
	if invalidParams(x0, gamma) || math.IsNaN(x) {
		return math.NaN()
	}
	if y, ok := limit(x, x0, gamma); ok {
		return y
	}
	t := (x - x0) / gamma
	return 1.0 / (math.Pi * gamma * (1.0 + t*t))
}

// LogPDF evaluates the natural logarithm of the Cauchy density at x.
// It follows the special cases of PDF, with -Inf wherever PDF returns 0.
func LogPDF(x, x0, gamma float64) float64 {
	if invalidParams(x0, gamma) || math.IsNaN(x) {
		return math.NaN()
	}
	if y, ok := limit(x, x0, gamma); ok {
		return math.Log(y)
	}
	return -logPi - math.Log(gamma) - log1pSquare((x-x0)/gamma)
}

var logPi = math.Log(math.Pi)

// log1pSquare returns log(1 + t*t) without overflowing t*t for |t| > 1.
func log1pSquare(t float64) float64 {
	t = math.Abs(t)
	if t <= 1 {
		return math.Log1p(t * t)
	}
	return 2*math.Log(t) + math.Log1p(1/(t*t))
}

// invalidParams reports whether (x0, gamma) do not describe a distribution.
// gamma <= 0 is false for NaN, hence the explicit check.
func invalidParams(x0, gamma float64) bool {
	return math.IsNaN(x0) || math.IsNaN(gamma) || gamma <= 0
}

// limit resolves the inputs for which x - x0 or (x - x0) / gamma would be
// formed from infinities. It must only be called with valid parameters and a
// non-NaN x.
func limit(x, x0, gamma float64) (float64, bool) {
	xInf, x0Inf := math.IsInf(x, 0), math.IsInf(x0, 0)
	switch {
	case xInf && x0Inf:
		if x == x0 {
			return math.NaN(), true
		}
		return 0, true
	case xInf:
		return 0, true
	case math.IsInf(gamma, 1):
		if x0Inf {
			return math.NaN(), true
		}
		return 0, true
	}
	return 0, false
}
