package sparse

import (
	"cmp"
	"fmt"
	"slices"
)

// Builder accumulates (row, col, value) triplets and compresses them into a
// CSR matrix. Duplicate coordinates are summed, as in a COO to CSR
// conversion. Explicit zeros produced by a sum are kept.
type Builder struct {
	rows, cols int
	entries    []entry
}

type entry struct {
	r, c int32
	v    float64
}

// NewBuilder starts an empty rows×cols matrix.
func NewBuilder(rows, cols int) *Builder {
	return &Builder{rows: rows, cols: cols}
}

// Add records value v at (r, c).
func (b *Builder) Add(r, c int, v float64) error {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return fmt.Errorf("(%d, %d) in %dx%d: %w", r, c, b.rows, b.cols, ErrIndex)
	}
	b.entries = append(b.entries, entry{r: int32(r), c: int32(c), v: v})
	return nil
}

// Build compresses the recorded triplets. Rows are laid out in order and
// columns are sorted within each row.
func (b *Builder) Build() *CSR {
	es := slices.Clone(b.entries)
	slices.SortStableFunc(es, func(x, y entry) int {
		if c := cmp.Compare(x.r, y.r); c != 0 {
			return c
		}
		return cmp.Compare(x.c, y.c)
	})

	m := &CSR{
		Data:    make([]float64, 0, len(es)),
		Indices: make([]int32, 0, len(es)),
		Indptr:  make([]int32, b.rows+1),
		Shape:   [2]int64{int64(b.rows), int64(b.cols)},
	}
	for i, e := range es {
		if i > 0 && es[i-1].r == e.r && es[i-1].c == e.c {
			m.Data[len(m.Data)-1] += e.v
			continue
		}
		m.Data = append(m.Data, e.v)
		m.Indices = append(m.Indices, e.c)
		m.Indptr[e.r+1]++
	}
	for i := 1; i <= b.rows; i++ {
		m.Indptr[i] += m.Indptr[i-1]
	}
	return m
}
