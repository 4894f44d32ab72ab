package vigesimal_test

import (
	"fmt"

	"github.com/matzehuels/mayanum/pkg/vigesimal"
)

func ExampleToDigits() {
	for _, n := range []uint64{0, 7, 123, 400} {
		fmt.Println(n, vigesimal.ToDigits(n))
	}
	// Output:
	// 0 [0]
	// 7 [7]
	// 123 [6 3]
	// 400 [1 0 0]
}

func ExampleFormat() {
	d := vigesimal.ToDigits(2025)
	fmt.Println(vigesimal.Format(d, vigesimal.Notation))
	fmt.Println(vigesimal.Format(d, vigesimal.Expanded))
	// Output:
	// 5,1,5₂₀
	// 5 × 20^2 • 1 × 20^1 • 5 × 20^0
}

func ExampleBars() {
	for _, d := range vigesimal.ToDigits(123) {
		fmt.Printf("digit %d: bars=%d dots=%d\n", d, vigesimal.Bars(d), vigesimal.Dots(d))
	}
	// Output:
	// digit 6: bars=1 dots=1
	// digit 3: bars=0 dots=3
}
