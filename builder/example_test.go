// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/neuromotif/builder"
)

// ExampleBuildMatrix pins a three-node chain whose middle node is inhibitory.
func ExampleBuildMatrix() {
	m, err := builder.BuildMatrix(3,
		[]builder.BuilderOption{builder.WithInhibitoryFraction(0)},
		builder.Polarities(1),
		builder.Edges(builder.Edge{From: 0, To: 1}, builder.Edge{From: 1, To: 2}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = m.WriteCSV(os.Stdout)
	// Output:
	// 0,1,0
	// 0,0,-1
	// 0,0,0
}

// ExampleRandomConnectome shows that a fixed seed reproduces the same matrix.
func ExampleRandomConnectome() {
	a, _ := builder.RandomConnectome(8, 0.25, builder.WithSeed(1))
	b, _ := builder.RandomConnectome(8, 0.25, builder.WithSeed(1))
	fmt.Println(len(a), fmt.Sprint(a) == fmt.Sprint(b))
	// Output:
	// 8 true
}
