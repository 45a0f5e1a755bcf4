package inscribe_test

import (
	"fmt"

	"github.com/geomys/inscribe"
)

func ExampleLargestRect() {
	// An L-shaped polygon in open representation.
	poly := inscribe.Polygon{
		inscribe.Pt(0, 0), inscribe.Pt(4, 0), inscribe.Pt(4, 2),
		inscribe.Pt(2, 2), inscribe.Pt(2, 4), inscribe.Pt(0, 4),
	}

	// Pin the angle, aspect ratio, and center so the search is fully
	// deterministic.
	best, err := inscribe.LargestRect(poly, inscribe.Options{
		Angles:       []float64{0},
		AspectRatios: []float64{2},
		Origins:      []inscribe.Point{inscribe.Pt(2, 1)},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("center %v, aspect ratio %g\n", best.Center, best.Width/best.Height)
	// Output:
	// center (2, 1), aspect ratio 2
}
