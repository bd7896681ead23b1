package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Complex is a filtered cell complex in boundary-matrix form: parallel
// column and dimension slices, faces ordered before cofaces.
type Complex struct {
	Columns [][]int64
	Dims    []int64
}

// NumCells returns the number of cells.
func (c *Complex) NumCells() int64 {
	return int64(len(c.Dims))
}

// Triangle returns the filtered full triangle: three vertices, three
// edges and the 2-cell spanned by them.
func Triangle() *Complex {
	return &Complex{
		Columns: [][]int64{
			{},        // vertex 0
			{},        // vertex 1
			{},        // vertex 2
			{0, 1},    // edge 01
			{1, 2},    // edge 12
			{0, 2},    // edge 02
			{3, 4, 5}, // triangle
		},
		Dims: []int64{0, 0, 0, 1, 1, 1, 2},
	}
}

type ripsCell struct {
	verts [3]int // padded with -1
	dim   int64
	value float64
}

// RandomRips builds the Vietoris-Rips filtration up to dimension two of
// numPoints random points in the unit square, truncated at the given
// distance threshold. Edges enter at their length, triangles at the
// length of their longest edge, so every face precedes its cofaces. The
// result is a valid boundary matrix for any seed, which makes it a good
// input for cross-checking reduction algorithms against each other.
func RandomRips(rng *RNG, numPoints int, threshold float64) *Complex {
	xs := make([]float64, numPoints)
	ys := make([]float64, numPoints)
	for i := range xs {
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
	}

	dist := func(i, j int) float64 {
		dx, dy := xs[i]-xs[j], ys[i]-ys[j]
		return math.Sqrt(dx*dx + dy*dy)
	}

	cells := make([]ripsCell, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		cells = append(cells, ripsCell{verts: [3]int{i, -1, -1}, dim: 0})
	}
	for i := 0; i < numPoints; i++ {
		for j := i + 1; j < numPoints; j++ {
			if d := dist(i, j); d <= threshold {
				cells = append(cells, ripsCell{verts: [3]int{i, j, -1}, dim: 1, value: d})
			}
		}
	}
	for i := 0; i < numPoints; i++ {
		for j := i + 1; j < numPoints; j++ {
			dij := dist(i, j)
			if dij > threshold {
				continue
			}
			for k := j + 1; k < numPoints; k++ {
				d := math.Max(dij, math.Max(dist(i, k), dist(j, k)))
				if d <= threshold {
					cells = append(cells, ripsCell{verts: [3]int{i, j, k}, dim: 2, value: d})
				}
			}
		}
	}

	// Filtration order: by value, lower dimension first on ties.
	sort.SliceStable(cells, func(a, b int) bool {
		if cells[a].value != cells[b].value {
			return cells[a].value < cells[b].value
		}
		return cells[a].dim < cells[b].dim
	})

	index := make(map[[3]int]int64, len(cells))
	for i, c := range cells {
		index[c.verts] = int64(i)
	}

	cx := &Complex{
		Columns: make([][]int64, len(cells)),
		Dims:    make([]int64, len(cells)),
	}
	for i, c := range cells {
		cx.Dims[i] = c.dim
		switch c.dim {
		case 0:
			cx.Columns[i] = []int64{}
		case 1:
			cx.Columns[i] = sortedIndices(index,
				[3]int{c.verts[0], -1, -1},
				[3]int{c.verts[1], -1, -1})
		case 2:
			cx.Columns[i] = sortedIndices(index,
				[3]int{c.verts[0], c.verts[1], -1},
				[3]int{c.verts[0], c.verts[2], -1},
				[3]int{c.verts[1], c.verts[2], -1})
		}
	}

	return cx
}

func sortedIndices(index map[[3]int]int64, faces ...[3]int) []int64 {
	out := make([]int64, 0, len(faces))
	for _, f := range faces {
		out = append(out, index[f])
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}
