// Package gen_test verifies topology, triangle counts and determinism of every
// constructor.
package gen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triest/gen"
	"github.com/katalvlaran/triest/triest"
)

// triangles counts triangles of the simple graph underlying edges.
func triangles(edges []triest.Edge[int64]) int {
	adj := make(map[int64]map[int64]bool)
	link := func(a, b int64) {
		if adj[a] == nil {
			adj[a] = make(map[int64]bool)
		}
		adj[a][b] = true
	}
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		link(e.U, e.V)
		link(e.V, e.U)
	}
	count := 0
	for u, nu := range adj {
		for v := range nu {
			if v <= u {
				continue
			}
			for w := range adj[v] {
				if w > v && nu[w] {
					count++
				}
			}
		}
	}
	return count
}

func vertices(edges []triest.Edge[int64]) int {
	seen := make(map[int64]struct{})
	for _, e := range edges {
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}
	return len(seen)
}

func TestConstructors_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    gen.Constructor
		wantE   int
		wantV   int
		wantTri int
	}{
		{"Complete(1)", gen.Complete(1), 0, 0, 0},
		{"Complete(3)", gen.Complete(3), 3, 3, 1},
		{"Complete(7)", gen.Complete(7), 21, 7, 35},
		{"Cycle(3)", gen.Cycle(3), 3, 3, 1},
		{"Cycle(6)", gen.Cycle(6), 6, 6, 0},
		{"Path(5)", gen.Path(5), 4, 5, 0},
		{"Star(6)", gen.Star(6), 5, 6, 0},
		{"Wheel(4)", gen.Wheel(4), 6, 4, 4},
		{"Wheel(9)", gen.Wheel(9), 16, 9, 8},
		{"Disjoint(5)", gen.Disjoint(5), 5, 10, 0},
		{"Loops(4)", gen.Loops(4), 4, 4, 0},
		{"RandomSparse(6,0)", gen.RandomSparse(6, 0), 0, 0, 0},
		{"RandomSparse(6,1)", gen.RandomSparse(6, 1), 15, 6, 20},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			edges, err := gen.Build(nil, tc.ctor)
			require.NoError(t, err)
			require.Len(t, edges, tc.wantE)
			require.Equal(t, tc.wantV, vertices(edges))
			require.Equal(t, tc.wantTri, triangles(edges))
		})
	}
}

func TestConstructors_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor gen.Constructor
		want error
	}{
		{"Complete(0)", gen.Complete(0), gen.ErrTooFewVertices},
		{"Cycle(2)", gen.Cycle(2), gen.ErrTooFewVertices},
		{"Path(1)", gen.Path(1), gen.ErrTooFewVertices},
		{"Star(1)", gen.Star(1), gen.ErrTooFewVertices},
		{"Wheel(3)", gen.Wheel(3), gen.ErrTooFewVertices},
		{"Disjoint(0)", gen.Disjoint(0), gen.ErrTooFewVertices},
		{"Loops(0)", gen.Loops(0), gen.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", gen.RandomSparse(0, 0.5), gen.ErrTooFewVertices},
		{"RandomSparse(5,-0.1)", gen.RandomSparse(5, -0.1), gen.ErrInvalidProbability},
		{"RandomSparse(5,1.5)", gen.RandomSparse(5, 1.5), gen.ErrInvalidProbability},
		{"RandomSparse(5,0.5) no rng", gen.RandomSparse(5, 0.5), gen.ErrNeedRandSource},
		{"nil constructor", nil, gen.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			edges, err := gen.Build(nil, tc.ctor)
			require.Nil(t, edges)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_ComposesDisjointBlocks(t *testing.T) {
	edges, err := gen.Build([]gen.Option{gen.WithOffset(100)},
		gen.Complete(5), gen.Wheel(6), gen.Cycle(3), gen.Loops(2))
	require.NoError(t, err)
	require.Equal(t, 10+10+3+2, len(edges))
	require.Equal(t, 10+5+1, triangles(edges))
	require.Equal(t, 5+6+3+2, vertices(edges))
	require.Equal(t, triest.Edge[int64]{U: 100, V: 101}, edges[0])
	require.True(t, edges[len(edges)-1].IsLoop())
}

func TestRepeat_DuplicatesAddNoTriangles(t *testing.T) {
	edges, err := gen.Build(nil, gen.Cycle(3), gen.Repeat(triest.Edge[int64]{U: 0, V: 1}, 4))
	require.NoError(t, err)
	require.Len(t, edges, 7)
	require.Equal(t, 1, triangles(edges))
	require.Equal(t, 3, vertices(edges))

	_, err = gen.Build(nil, gen.Repeat(triest.Edge[int64]{U: 0, V: 1}, 0))
	require.ErrorIs(t, err, gen.ErrTooFewVertices)
	_, err = gen.Build(nil, gen.Repeat(triest.Edge[int64]{U: -1, V: 1}, 1))
	require.ErrorIs(t, err, gen.ErrConstructFailed)
}

func TestBuild_ShuffleDeterminism(t *testing.T) {
	opts := []gen.Option{gen.WithSeed(7), gen.WithShuffle()}
	a, err := gen.Build(opts, gen.Complete(12))
	require.NoError(t, err)
	b, err := gen.Build([]gen.Option{gen.WithSeed(7), gen.WithShuffle()}, gen.Complete(12))
	require.NoError(t, err)
	require.Equal(t, a, b)

	plain, err := gen.Build(nil, gen.Complete(12))
	require.NoError(t, err)
	require.ElementsMatch(t, plain, a)
	require.NotEqual(t, plain, a)

	_, err = gen.Build([]gen.Option{gen.WithShuffle()}, gen.Complete(4))
	require.True(t, errors.Is(err, gen.ErrNeedRandSource))
}

func TestRandomSparse_Seeded(t *testing.T) {
	a, err := gen.Build([]gen.Option{gen.WithSeed(3)}, gen.RandomSparse(40, 0.2))
	require.NoError(t, err)
	b, err := gen.Build([]gen.Option{gen.WithSeed(3)}, gen.RandomSparse(40, 0.2))
	require.NoError(t, err)
	require.Equal(t, a, b)
	// 780 pairs at p=0.2: far from both extremes.
	require.Greater(t, len(a), 50)
	require.Less(t, len(a), 300)
	for _, e := range a {
		require.Less(t, e.U, e.V)
	}
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { gen.WithRand(nil) })
	require.Panics(t, func() { gen.WithOffset(-1) })
}

func TestParseKind(t *testing.T) {
	for _, k := range gen.Kinds {
		got, err := gen.ParseKind(" " + string(k) + " ")
		require.NoError(t, err)
		require.Equal(t, k, got)
		_, err = gen.ForKind(got, 5, 0.5)
		require.NoError(t, err)
	}
	_, err := gen.ParseKind("Petersen")
	require.ErrorIs(t, err, gen.ErrUnknownKind)
	_, err = gen.ForKind(gen.Kind("petersen"), 5, 0)
	require.ErrorIs(t, err, gen.ErrUnknownKind)

	k, err := gen.ParseKind("WHEEL")
	require.NoError(t, err)
	require.Equal(t, gen.KindWheel, k)
}
