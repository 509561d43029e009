package cauchy

import "gonum.org/v1/gonum/stat/distuv"

var _ distuv.LogProber = Cauchy{}

// Cauchy is a Cauchy distribution with location X0 and scale Gamma.
// The zero value is not a valid distribution: Gamma must be positive.
type Cauchy struct {
	X0    float64
	Gamma float64
}

// Prob computes the value of the probability density function at x.
func (c Cauchy) Prob(x float64) float64 {
	return PDF(x, c.X0, c.Gamma)
}

// LogProb computes the natural logarithm of the density at x.
func (c Cauchy) LogProb(x float64) float64 {
	return LogPDF(x, c.X0, c.Gamma)
}

// Valid reports whether c describes a distribution.
func (c Cauchy) Valid() bool {
	return !invalidParams(c.X0, c.Gamma)
}

// Func returns the density of c as a unary function, see Factory.
func (c Cauchy) Func() func(float64) float64 {
	return Factory(c.X0, c.Gamma)
}
