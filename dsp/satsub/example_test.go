package satsub_test

import (
	"fmt"

	"github.com/PhilippHaizmann/SatSub/dsp/satsub"
	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
)

func ExampleSubtract() {
	s, _ := spectrum.New(
		[]float64{5, 4, 3, 2, 1, 0},
		[]float64{6, 5, 4, 3, 2, 1},
	)

	res, err := satsub.Subtract(s, satsub.Params{
		Beta:  satsub.Satellite{Offset: 1, Fraction: 0.5},
		Gamma: satsub.Satellite{Offset: 2, Fraction: 0.5},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := range res.Grid {
		fmt.Printf("%.1f %.2f\n", res.Grid[i], res.Subtracted[i])
	}

	// Output:
	// 3.0 -1.50
	// 2.4 -1.50
	// 1.8 -1.50
	// 1.2 -1.50
	// 0.6 -1.50
	// 0.0 -1.50
}
