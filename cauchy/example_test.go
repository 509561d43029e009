package cauchy_test

import (
	"fmt"
	"math"

	"github.com/on-the-ground/cauchy_ive_go/cauchy"
)

func ExamplePDF() {
	fmt.Printf("%.6f\n", cauchy.PDF(2.0, 1.0, 1.0))
	fmt.Printf("%.4f\n", cauchy.PDF(4.0, 3.0, 0.1))
	fmt.Printf("%.3f\n", cauchy.PDF(4.0, 3.0, 3.0))
	fmt.Println(cauchy.PDF(math.NaN(), 1.0, 1.0))
	fmt.Println(cauchy.PDF(2.0, 1.0, -2.0))
	fmt.Println(cauchy.PDF(math.Inf(1), 1.0, 1.0))
	// Output:
	// 0.159155
	// 0.0315
	// 0.095
	// NaN
	// NaN
	// 0
}

func ExampleFactory() {
	pdf := cauchy.Factory(10.0, 2.0)
	fmt.Printf("%.4f\n", pdf(10.0))
	fmt.Printf("%.4f\n", pdf(12.0))

	invalid := cauchy.Factory(0.0, 0.0)
	fmt.Println(invalid(0.0))
	// Output:
	// 0.1592
	// 0.0796
	// NaN
}
