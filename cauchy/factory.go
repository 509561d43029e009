package cauchy

import "math"

// Factory returns a function that evaluates the Cauchy density with location
// x0 and scale gamma. The returned function gives the same result as
// PDF(x, x0, gamma) for every x.
//
// The parameters are checked once. If x0 is NaN, or gamma is NaN or not
// positive, the returned function yields NaN for every x.
func Factory(x0, gamma float64) func(x float64) float64 {
	if invalidParams(x0, gamma) {
		return constantNaN
	}
	return func(x float64) float64 {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if y, ok := limit(x, x0, gamma); ok {
			return y
		}
		t := (x - x0) / gamma
		return 1.0 / (math.Pi * gamma * (1.0 + t*t))
	}
}

// LogFactory is the LogPDF counterpart of Factory.
func LogFactory(x0, gamma float64) func(x float64) float64 {
	if invalidParams(x0, gamma) {
		return constantNaN
	}
	logGamma := math.Log(gamma)
	return func(x float64) float64 {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if y, ok := limit(x, x0, gamma); ok {
			return math.Log(y)
		}
		return -logPi - logGamma - log1pSquare((x-x0)/gamma)
	}
}

func constantNaN(float64) float64 {
	return math.NaN()
}
