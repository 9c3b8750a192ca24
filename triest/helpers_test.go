// Package triest_test holds shared fixtures for the estimator tests.
package triest_test

import "github.com/katalvlaran/triest/triest"

const (
	// seedDet is the deterministic seed used across tests (0 ⇒ DefaultSeed).
	seedDet = int64(0)
)

// fixedRand returns the same coin value and slot 0 forever, which makes the
// admission decision a function of M/t alone and eviction always hit slot 0.
type fixedRand struct{ coin float64 }

func (r fixedRand) Float64() float64 { return r.coin }
func (r fixedRand) Intn(int) int     { return 0 }

var (
	alwaysAdmit = fixedRand{coin: 0}
	neverAdmit  = fixedRand{coin: 0.999999}
)

// edgesOf turns endpoint pairs into a stream.
func edgesOf(pairs ...[2]int) []triest.Edge[int] {
	out := make([]triest.Edge[int], len(pairs))
	for i, p := range pairs {
		out[i] = triest.Edge[int]{U: p[0], V: p[1]}
	}
	return out
}

// completeStream emits K_n in lexicographic pair order.
func completeStream(n int) []triest.Edge[int] {
	out := make([]triest.Edge[int], 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, triest.Edge[int]{U: i, V: j})
		}
	}
	return out
}

// bruteTriangles counts triangles of the simple graph spanned by edges,
// ignoring loops and repeated pairs. O(V^3); fixtures only.
func bruteTriangles(edges []triest.Edge[int]) int64 {
	adj := make(map[int]map[int]bool)
	link := func(u, v int) {
		if adj[u] == nil {
			adj[u] = make(map[int]bool)
		}
		adj[u][v] = true
	}
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		link(e.U, e.V)
		link(e.V, e.U)
	}
	vs := make([]int, 0, len(adj))
	for v := range adj {
		vs = append(vs, v)
	}

	var n int64
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !adj[vs[i]][vs[j]] {
				continue
			}
			for k := j + 1; k < len(vs); k++ {
				if adj[vs[i]][vs[k]] && adj[vs[j]][vs[k]] {
					n++
				}
			}
		}
	}
	return n
}

// shuffled returns a deterministic permutation of edges (LCG-driven, no
// dependency on the estimator's source).
func shuffled(edges []triest.Edge[int], seed uint64) []triest.Edge[int] {
	out := append([]triest.Edge[int](nil), edges...)
	x := seed | 1
	for i := len(out) - 1; i > 0; i-- {
		x = x*6364136223846793005 + 1442695040888963407
		j := int((x >> 33) % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// bruteMultiTriangles counts multigraph triangles: every triple {u,v,w}
// contributes m(u,v)·m(v,w)·m(u,w), where m counts repeated pairs in either
// orientation. Loops are ignored.
func bruteMultiTriangles(edges []triest.Edge[int]) int64 {
	type pair struct{ a, b int }
	key := func(u, v int) pair {
		if u > v {
			u, v = v, u
		}
		return pair{u, v}
	}
	mult := make(map[pair]int64)
	seen := make(map[int]struct{})
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		mult[key(e.U, e.V)]++
		seen[e.U], seen[e.V] = struct{}{}, struct{}{}
	}
	vs := make([]int, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}

	var n int64
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			ij := mult[key(vs[i], vs[j])]
			if ij == 0 {
				continue
			}
			for k := j + 1; k < len(vs); k++ {
				n += ij * mult[key(vs[i], vs[k])] * mult[key(vs[j], vs[k])]
			}
		}
	}
	return n
}
