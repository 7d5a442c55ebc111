// SPDX-License-Identifier: MIT
package loader_test

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/katalvlaran/neuromotif/loader"
)

// ExampleLoad reads a 3×3 matrix in which node 1 is inhibitory, the diagonal
// cell of node 0 is dropped, and "0.00" counts as a connection under the
// default literal zero policy.
func ExampleLoad() {
	body := "0.5,1,0\n0,0,-2\n0.00,0,0\n"
	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1

	var st loader.Stats
	g, err := loader.Load(r, loader.WithStats(&st))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < g.Len(); i++ {
		n, _ := g.Node(i)
		fmt.Printf("%d %s to=%v\n", i, n.Polarity.Short(), n.EdgesTo)
	}
	fmt.Printf("rows=%d edges=%d loops=%d zero-connected=%d\n",
		st.Rows, st.Edges, st.SkippedLoops, st.ZeroConnected)
	// Output:
	// 0 E to=[1]
	// 1 I to=[2]
	// 2 ? to=[0]
	// rows=3 edges=3 loops=1 zero-connected=1
}
