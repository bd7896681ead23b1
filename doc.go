// Package topogo provides an embedded persistence-pair computation engine for Go.
//
// Topogo reduces a boundary matrix over GF(2) into its persistence pairs,
// the birth-death index pairs of persistent homology. It supports eight
// column representations, five reduction strategies (sequential and
// parallel), dualized computation, and file formats for matrices and
// diagrams, local or in object storage.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	m := boundary.New(column.BitTreePivot)
//	if err := m.LoadBinaryFile("complex.bin"); err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := topogo.ComputePersistencePairs(ctx, m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Sort()
//	for _, pair := range p.All() {
//	    fmt.Println(pair.Birth, pair.Death)
//	}
//
// # Choosing a Strategy
//
// Twist is the default and a good fit for most filtrations. For large
// complexes on multi-core machines:
//
//	p, err := topogo.ComputePersistencePairs(ctx, m,
//	    topogo.WithReduction(reduction.Chunk),
//	    topogo.WithNumWorkers(8),
//	)
//
// For complexes dominated by top-dimensional cells the dual computation
// is often much faster:
//
//	p, err := topogo.ComputePersistencePairsDualized(ctx, m)
//
// # Choosing a Representation
//
// All representations produce identical pairs; they trade memory for
// column-addition speed. BitTreePivot is a strong default for reduction
// workloads; VectorVector is the simplest and cheapest to load and save.
// Convert between them with boundary.Matrix.Convert.
//
// # Storage
//
// Matrices and diagrams round-trip through ASCII and binary formats
// (optionally zstd or lz4 compressed), against local files or any
// blobstore.BlobStore backend (local disk, memory, S3, MinIO):
//
//	store := blobstore.NewLocalStore("./data")
//	err := topogo.SaveMatrix(ctx, store, "complex.bin", m,
//	    topogo.WithCodec(boundary.CodecZstd),
//	)
package topogo
