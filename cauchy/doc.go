// Package cauchy evaluates the probability density of the Cauchy distribution.
//
// The density with location x0 and scale gamma is
//
//	f(x; x0, gamma) = 1 / (π·gamma·(1 + ((x - x0)/gamma)²))
//
// Every function in this package is pure and total over float64: invalid
// input never panics and never returns an error, it yields NaN.
//
//   - PDF and LogPDF evaluate a single (x, x0, gamma) triple.
//   - Factory and LogFactory bind (x0, gamma) once and return a unary evaluator.
//   - TableizedFactory memoizes a Factory evaluator through package pure.
//   - Cauchy is a value type in the shape of gonum's distuv distributions.
//
// A parameter pair is valid when x0 is not NaN and gamma > 0 (+Inf included).
// NaN in any argument wins over every other rule, and an invalid parameter
// pair wins over the infinite-x shortcut:
//
//	PDF(math.Inf(1), 0, -1) // NaN, not 0
//
// Infinite x with finite x0 is resolved before x - x0 is formed, so the
// result is exactly 0 instead of an artifact of inf - inf arithmetic.
package cauchy
