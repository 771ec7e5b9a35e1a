// Package sparse implements the compressed sparse row (CSR) matrix used for
// adjacency and attribute matrices.
//
// A CSR matrix stores, for an R×C matrix with nnz nonzeros:
//
//	Data    [nnz]float64  nonzero values, row by row
//	Indices [nnz]int32    column of each value, sorted within a row
//	Indptr  [R+1]int32    Indptr[i]..Indptr[i+1] spans row i in Data/Indices
//	Shape   [2]int64      (R, C)
//
// This matches the canonical layout of scipy.sparse.csr_matrix, so the
// component arrays can be handed to numpy-based tools unchanged.
package sparse

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrShape is returned when component arrays disagree with the shape.
	ErrShape = errors.New("sparse: inconsistent shape")

	// ErrIndex is returned for a column index outside [0, cols).
	ErrIndex = errors.New("sparse: index out of range")

	// ErrRagged is returned by FromDense for rows of different lengths.
	ErrRagged = errors.New("sparse: rows have different lengths")
)

// CSR is an immutable compressed sparse row matrix.
type CSR struct {
	Data    []float64
	Indices []int32
	Indptr  []int32
	Shape   [2]int64
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return int(m.Shape[0]) }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return int(m.Shape[1]) }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.Data) }

// Row returns the column indices and values stored for row i. The slices
// alias the matrix storage and must not be modified.
func (m *CSR) Row(i int) ([]int32, []float64) {
	lo, hi := m.Indptr[i], m.Indptr[i+1]
	return m.Indices[lo:hi], m.Data[lo:hi]
}

// At returns the value at (i, j).
func (m *CSR) At(i, j int) float64 {
	cols, vals := m.Row(i)
	if k, ok := slices.BinarySearch(cols, int32(j)); ok {
		return vals[k]
	}
	return 0
}

// Dense expands the matrix into a row-major [][]float64.
func (m *CSR) Dense() [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		cols, vals := m.Row(i)
		for k, c := range cols {
			out[i][c] = vals[k]
		}
	}
	return out
}

// Validate checks that the component arrays describe a well-formed matrix:
// len(Indptr) == rows+1, Indptr is non-decreasing and ends at nnz, and every
// column index is in range.
func (m *CSR) Validate() error {
	if m.Shape[0] < 0 || m.Shape[1] < 0 {
		return fmt.Errorf("negative shape %v: %w", m.Shape, ErrShape)
	}
	if int64(len(m.Indptr)) != m.Shape[0]+1 {
		return fmt.Errorf("indptr length %d for %d rows: %w", len(m.Indptr), m.Shape[0], ErrShape)
	}
	if len(m.Indices) != len(m.Data) {
		return fmt.Errorf("%d indices for %d values: %w", len(m.Indices), len(m.Data), ErrShape)
	}
	if m.Indptr[0] != 0 || int(m.Indptr[len(m.Indptr)-1]) != len(m.Data) {
		return fmt.Errorf("indptr must span [0, %d]: %w", len(m.Data), ErrShape)
	}
	for i := 1; i < len(m.Indptr); i++ {
		if m.Indptr[i] < m.Indptr[i-1] {
			return fmt.Errorf("indptr decreases at row %d: %w", i-1, ErrShape)
		}
	}
	for _, c := range m.Indices {
		if c < 0 || int64(c) >= m.Shape[1] {
			return fmt.Errorf("column %d with %d columns: %w", c, m.Shape[1], ErrIndex)
		}
	}
	return nil
}

// Equal reports whether two matrices have identical shape and components.
func (m *CSR) Equal(o *CSR) bool {
	return m.Shape == o.Shape &&
		slices.Equal(m.Data, o.Data) &&
		slices.Equal(m.Indices, o.Indices) &&
		slices.Equal(m.Indptr, o.Indptr)
}

// FromDense builds a CSR matrix from row-major values, keeping only nonzero
// entries. An empty input yields a 0×0 matrix; a single row yields a 1×C
// matrix (the dense literal [0, 1] becomes shape (1, 2)).
func FromDense(rows [][]float64) (*CSR, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := &CSR{
		Data:    []float64{},
		Indices: []int32{},
		Indptr:  make([]int32, 1, len(rows)+1),
		Shape:   [2]int64{int64(len(rows)), int64(cols)},
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrRagged)
		}
		for j, v := range row {
			if v != 0 {
				m.Data = append(m.Data, v)
				m.Indices = append(m.Indices, int32(j))
			}
		}
		m.Indptr = append(m.Indptr, int32(len(m.Data)))
	}
	return m, nil
}
