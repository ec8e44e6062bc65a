package cmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qphoton/montrealer/cmatrix"
)

func TestNewDense_RejectsBadShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -4}} {
		_, err := cmatrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, cmatrix.ErrBadShape)
	}
}

func TestFromRows_CopiesAndValidates(t *testing.T) {
	rows := [][]complex128{
		{1, 2i},
		{3, 4 + 1i},
	}
	m, err := cmatrix.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	// mutating the source must not touch the matrix
	rows[0][0] = 99
	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), got)

	_, err = cmatrix.FromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, cmatrix.ErrRagged)

	_, err = cmatrix.FromRows(nil)
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := cmatrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 5i))
	got, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5i, got)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), cmatrix.ErrOutOfRange)
}

func TestDense_CloneIndependence(t *testing.T) {
	m, err := cmatrix.FromRows([][]complex128{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -7))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), orig)
}

func TestDense_TransposeConj(t *testing.T) {
	m, err := cmatrix.FromRows([][]complex128{
		{1 + 1i, 2},
		{3, 4 - 2i},
	})
	require.NoError(t, err)

	tr := m.Transpose()
	got, err := tr.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(3), got)

	cj := m.Conj()
	got, err = cj.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1-1i, got)

	ct := m.ConjTranspose()
	got, err = ct.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4+2i, got)
	got, err = ct.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(2), got)
}

func TestDense_AddAndDiagonal(t *testing.T) {
	a, err := cmatrix.FromRows([][]complex128{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := cmatrix.FromRows([][]complex128{{10, 0}, {0, 10}})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []complex128{11, 14}, sum.Diagonal())

	wide, err := cmatrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = a.Add(wide)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

func TestValidators_Chain(t *testing.T) {
	require.ErrorIs(t, cmatrix.ValidateNotNil(nil), cmatrix.ErrNilMatrix)

	rect, err := cmatrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, cmatrix.ValidateSquare(rect), cmatrix.ErrNonSquare)

	odd, err := cmatrix.NewDense(3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, cmatrix.ValidateEvenDim(odd), cmatrix.ErrOddDimension)

	asym, err := cmatrix.FromRows([][]complex128{{0, 1}, {2, 0}})
	require.NoError(t, err)
	require.ErrorIs(t, cmatrix.ValidateSymmetric(asym, cmatrix.DefaultEpsilon), cmatrix.ErrAsymmetry)
	require.ErrorIs(t, cmatrix.ValidateAdjacency(asym, cmatrix.DefaultEpsilon), cmatrix.ErrAsymmetry)

	sym, err := cmatrix.FromRows([][]complex128{{0, 1i}, {1i, 0}})
	require.NoError(t, err)
	require.NoError(t, cmatrix.ValidateAdjacency(sym, cmatrix.DefaultEpsilon))

	require.ErrorIs(t, cmatrix.ValidateVecLen([]complex128{1}, 2), cmatrix.ErrDimensionMismatch)
	require.NoError(t, cmatrix.ValidateVecLen([]complex128{1, 2}, 2))
}
