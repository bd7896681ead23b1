package topogo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/topogo"
	"github.com/hupe1980/topogo/blobstore"
	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/column"
	"github.com/hupe1980/topogo/reduction"
)

// Example demonstrates computing the persistence pairs of a filtered
// triangle: three vertices, three edges, one 2-cell.
func Example() {
	ctx := context.Background()

	m := boundary.New(column.VectorVector)
	err := m.Load([][]int64{
		{}, {}, {}, // vertices
		{0, 1}, {1, 2}, {0, 2}, // edges
		{3, 4, 5}, // triangle
	}, []int64{0, 0, 0, 1, 1, 1, 2})
	if err != nil {
		log.Fatal(err)
	}

	p, err := topogo.ComputePersistencePairs(ctx, m)
	if err != nil {
		log.Fatal(err)
	}

	p.Sort()
	for _, pair := range p.All() {
		fmt.Println(pair.Birth, pair.Death)
	}
	// Output:
	// 1 3
	// 2 4
	// 5 6
}

// Example_chunkReduction demonstrates the parallel chunk strategy.
func Example_chunkReduction() {
	ctx := context.Background()

	m := boundary.New(column.BitTreePivot)
	err := m.Load([][]int64{
		{}, {}, {0, 1},
	}, []int64{0, 0, 1})
	if err != nil {
		log.Fatal(err)
	}

	p, err := topogo.ComputePersistencePairs(ctx, m,
		topogo.WithReduction(reduction.Chunk),
		topogo.WithNumWorkers(4),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.Len())
	// Output: 1
}

// Example_blobStorage demonstrates saving a diagram to object storage.
func Example_blobStorage() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	m := boundary.New(column.VectorVector)
	if err := m.Load([][]int64{{}, {}, {0, 1}}, []int64{0, 0, 1}); err != nil {
		log.Fatal(err)
	}

	p, err := topogo.ComputePersistencePairs(ctx, m)
	if err != nil {
		log.Fatal(err)
	}

	if err := topogo.SavePairs(ctx, store, "diagram.bin", p); err != nil {
		log.Fatal(err)
	}

	loaded, err := topogo.LoadPairs(ctx, store, "diagram.bin")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(loaded.Equal(p))
	// Output: true
}
