// SPDX-License-Identifier: MIT
package census_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neuromotif/builder"
	"github.com/katalvlaran/neuromotif/census"
	"github.com/katalvlaran/neuromotif/core"
	"github.com/katalvlaran/neuromotif/loader"
	"github.com/katalvlaran/neuromotif/motif"
)

func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	recs, err := builder.RandomConnectome(n, p, builder.WithSeed(seed))
	require.NoError(t, err)
	g, err := loader.LoadRecords(recs)
	require.NoError(t, err)

	return g
}

func TestTally_SeedOrderAndCounts(t *testing.T) {
	t.Parallel()

	tl := census.NewTally(motif.BasicCategories())
	require.NoError(t, tl.Add(motif.BasicReciprocal))
	require.NoError(t, tl.Add(motif.BasicReciprocal))
	require.NoError(t, tl.Add(motif.BasicChain))

	assert.Equal(t, 3, tl.Total())
	assert.Equal(t, 2, tl.Count(motif.BasicReciprocal))
	assert.Equal(t, 0, tl.Count(motif.ChainEE))
	assert.Equal(t, []census.Count{
		{Name: "Chain", N: 1},
		{Name: "Convergent", N: 0},
		{Name: "Divergent", N: 0},
		{Name: "Reciprocal", N: 2},
	}, tl.Counts())
	assert.Equal(t, motif.BasicCategories(), tl.Categories())

	assert.ErrorIs(t, tl.Add(motif.ChainEE), census.ErrUnknownCategory)
}

func TestTally_Merge(t *testing.T) {
	t.Parallel()

	a := census.NewTally(motif.PolarityCategories())
	b := census.NewTally(motif.PolarityCategories())
	require.NoError(t, a.Add(motif.DivergentI))
	require.NoError(t, b.Add(motif.DivergentI))
	require.NoError(t, b.Add(motif.ChainIE))
	require.NoError(t, a.Merge(b))
	assert.Equal(t, 2, a.Count(motif.DivergentI))
	assert.Equal(t, 1, a.Count(motif.ChainIE))
	assert.Equal(t, 3, a.Total())

	assert.ErrorIs(t, a.Merge(nil), census.ErrTallyNil)

	basic := census.NewTally(motif.BasicCategories())
	require.NoError(t, basic.Add(motif.BasicChain))
	assert.ErrorIs(t, a.Merge(basic), census.ErrUnknownCategory)
}

func TestRun_AllZeroRendersZeroCounts(t *testing.T) {
	t.Parallel()

	g, err := loader.LoadRecords([][]string{{"0", "0", "0"}, {"0", "0", "0"}, {"0", "0", "0"}})
	require.NoError(t, err)

	for _, mode := range []motif.Mode{motif.ModeBasic, motif.ModeByPolarity} {
		c, err := motif.NewClassifier(mode, g)
		require.NoError(t, err)
		tl, err := census.Run(g, c)
		require.NoError(t, err)
		assert.Zero(t, tl.Total())
		assert.Len(t, tl.Counts(), len(c.Categories()))
	}

	tl, err := census.Run(g, motif.Basic())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, census.Render(&buf, tl, census.RenderOptions{}))
	assert.Equal(t, "Chain: 0\nConvergent: 0\nDivergent: 0\nReciprocal: 0\n", buf.String())
}

func TestRun_SumsMatchAcrossModes(t *testing.T) {
	t.Parallel()

	// p = 1 gives every node output, so every anchor has a polarity.
	for seed := int64(1); seed <= 3; seed++ {
		g := randomGraph(t, 10, 1, seed)
		shapes, err := motif.Collect(g)
		require.NoError(t, err)

		basic, err := census.Run(g, motif.Basic())
		require.NoError(t, err)
		c, err := motif.ByPolarity(g)
		require.NoError(t, err)
		byPol, err := census.Run(g, c)
		require.NoError(t, err)

		assert.Equal(t, len(shapes), basic.Total())
		assert.Equal(t, len(shapes), byPol.Total())

		sum := 0
		for _, cnt := range byPol.Counts() {
			sum += cnt.N
		}
		assert.Equal(t, byPol.Total(), sum)

		// Shape tallies agree between the schemes.
		chains := byPol.Count(motif.ChainEE) + byPol.Count(motif.ChainEI) + byPol.Count(motif.ChainIE) + byPol.Count(motif.ChainII)
		assert.Equal(t, basic.Count(motif.BasicChain), chains)
		assert.Equal(t, basic.Count(motif.BasicDivergent), byPol.Count(motif.DivergentE)+byPol.Count(motif.DivergentI))
	}
}

func TestRun_ParallelEqualsSequential(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 60, 0.1, 11)
	seq, err := census.Run(g, motif.Basic())
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 100} {
		par, err := census.Run(g, motif.Basic(), census.WithWorkers(workers))
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, seq.Counts(), par.Counts(), "workers=%d", workers)
	}
}

func TestRun_HookSeesEmissionOrder(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 15, 0.2, 5)
	want, err := motif.Collect(g)
	require.NoError(t, err)

	var got []motif.Shape
	_, err = census.Run(g, motif.Basic(),
		census.WithWorkers(4), // ignored while a hook is installed
		census.WithOnMotif(func(s motif.Shape, _ motif.Category) error {
			got = append(got, s)
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	stop := errors.New("stop")
	tl, err := census.Run(g, motif.Basic(), census.WithOnMotif(func(motif.Shape, motif.Category) error { return stop }))
	assert.Nil(t, tl)
	assert.ErrorIs(t, err, stop)
}

func TestRun_UndeterminedAnchorIsFatal(t *testing.T) {
	t.Parallel()

	// Node 2 has no outgoing weights, so Chain(0,1,2) cannot be classified.
	g, err := loader.LoadRecords([][]string{{"0", "1", "0"}, {"0", "0", "1"}, {"0", "0", "0"}})
	require.NoError(t, err)
	c, err := motif.ByPolarity(g)
	require.NoError(t, err)

	for _, workers := range []int{1, 2} {
		tl, err := census.Run(g, c, census.WithWorkers(workers))
		assert.Nil(t, tl)
		assert.ErrorIs(t, err, motif.ErrUndeterminedPolarity)
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 20, 0.2, 9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := census.Run(g, motif.Basic(), census.WithContext(ctx), census.WithWorkers(workers))
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, err := census.Run(nil, motif.Basic())
	assert.ErrorIs(t, err, motif.ErrGraphNil)

	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, err = census.Run(g, nil)
	assert.ErrorIs(t, err, census.ErrClassifierNil)
}

func TestRender_Pretty(t *testing.T) {
	t.Parallel()

	tl := census.NewTally(motif.BasicCategories())
	require.NoError(t, tl.Add(motif.BasicDivergent))

	var buf bytes.Buffer
	require.NoError(t, census.Render(&buf, tl, census.RenderOptions{Pretty: true}))
	out := buf.String()
	for _, want := range []string{"Category", "Count", "Chain", "Divergent", "Reciprocal", "Total"} {
		assert.Contains(t, out, want)
	}

	assert.ErrorIs(t, census.Render(&buf, nil, census.RenderOptions{}), census.ErrTallyNil)
}

func TestFormatMotif(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reciprocal: 0 ↔ 1 (ReciprocalEI)", census.FormatMotif(motif.ReciprocalOf(0, 1), motif.ReciprocalEI))
	assert.Equal(t, "chain: 0 → 1 → 2 (Chain)", census.FormatMotif(motif.ChainOf(0, 1, 2), motif.BasicChain))
}
