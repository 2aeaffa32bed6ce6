package dataset_test

import (
	"fmt"

	"github.com/arloliu/torsion/dataset"
)

func ExampleParse() {
	raw := []byte("Force (N), Angle (degrees)\n0.5, 10\n1.0, 21\n")

	s, err := dataset.Parse("trial1.csv", raw)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Len(), s.X(), s.Y())
	// Output: 2 [0.5 1] [10 21]
}
