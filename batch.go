package dicttrie

import "golang.org/x/sync/errgroup"

// SegmentAll runs Iterator.Boundaries over each buffer in inputs
// concurrently, returning one boundary slice per buffer in the same
// order. It exists because independent cursors (and the Iterators built
// on them) over the same Blob never interfere with each other even
// though they share the underlying byte slice (spec.md §5) — so
// segmenting N independent buffers against one dictionary is embarrassingly
// parallel, and a batch entry point is the natural place to exercise
// that guarantee.
func SegmentAll(blob *Blob, inputs [][]uint16) ([][]int, error) {
	results := make([][]int, len(inputs))

	var g errgroup.Group
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			results[i] = NewIterator(blob, in).Boundaries()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
