package cauchy

import "github.com/on-the-ground/cauchy_ive_go/pure"

// TableizedFactory is Factory backed by a bounded memo table of at most
// maxTableSize entries. It pays off only at call sites that evaluate the same
// points over and over; results are identical to Factory.
//
// Invalid parameters return the constant-NaN evaluator without a table.
// maxTableSize must be positive.
func TableizedFactory(x0, gamma float64, maxTableSize uint32) func(x float64) float64 {
	if invalidParams(x0, gamma) {
		return constantNaN
	}
	return pure.TableizeF1(Factory(x0, gamma), maxTableSize)
}
