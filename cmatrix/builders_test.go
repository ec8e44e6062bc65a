package cmatrix_test

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs/cscalar"

	"github.com/qphoton/montrealer/cmatrix"
)

// tolAbs is the absolute tolerance for floating comparisons; fixture
// arithmetic stays well within it.
const tolAbs = 1e-10

func TestOnesZeros(t *testing.T) {
	ones, err := cmatrix.Ones(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := ones.At(i, j)
			require.NoError(t, err)
			require.Equal(t, complex128(1), v)
		}
	}

	zeros, err := cmatrix.Zeros(2)
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 0}, zeros.Diagonal())

	_, err = cmatrix.Ones(0)
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
}

func TestAssembleBlocks(t *testing.T) {
	tl, err := cmatrix.FromRows([][]complex128{{1}})
	require.NoError(t, err)
	tr, err := cmatrix.FromRows([][]complex128{{2}})
	require.NoError(t, err)
	bl, err := cmatrix.FromRows([][]complex128{{3}})
	require.NoError(t, err)
	br, err := cmatrix.FromRows([][]complex128{{4}})
	require.NoError(t, err)

	m, err := cmatrix.AssembleBlocks(tl, tr, bl, br)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	want := []complex128{1, 2, 3, 4}
	require.Equal(t, want, m.Raw())

	wide, err := cmatrix.NewDense(1, 2)
	require.NoError(t, err)
	_, err = cmatrix.AssembleBlocks(tl, tr, bl, wide)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

func TestHermitizeSymmetrize(t *testing.T) {
	u, err := cmatrix.FromRows([][]complex128{
		{1 + 1i, 2 - 1i},
		{-3i, 4},
	})
	require.NoError(t, err)

	h, err := cmatrix.Hermitize(u)
	require.NoError(t, err)
	// Hermitian: h[i][j] == conj(h[j][i])
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a, err := h.At(i, j)
			require.NoError(t, err)
			b, err := h.At(j, i)
			require.NoError(t, err)
			require.True(t, cscalar.EqualWithinAbs(a, cmplx.Conj(b), tolAbs))
		}
	}

	s, err := cmatrix.Symmetrize(u)
	require.NoError(t, err)
	require.NoError(t, cmatrix.ValidateSymmetric(s, cmatrix.DefaultEpsilon))
}

func TestScaleCongruence(t *testing.T) {
	a, err := cmatrix.FromRows([][]complex128{{1, 2}, {2, 3}})
	require.NoError(t, err)

	d := []complex128{2i, 3}
	out, err := cmatrix.ScaleCongruence(a, d)
	require.NoError(t, err)

	v, err := out.At(0, 1)
	require.NoError(t, err)
	require.True(t, cscalar.EqualWithinAbs(v, 2i*3*2, tolAbs))
	v, err = out.At(0, 0)
	require.NoError(t, err)
	require.True(t, cscalar.EqualWithinAbs(v, 2i*2i*1, tolAbs))

	_, err = cmatrix.ScaleCongruence(a, []complex128{1})
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

func TestPermuteModes(t *testing.T) {
	// 4×4 adjacency, n=2; swap the two mode classes.
	a, err := cmatrix.FromRows([][]complex128{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	require.NoError(t, err)

	out, err := cmatrix.PermuteModes(a, []int{1, 0})
	require.NoError(t, err)
	// entry (0,1) moves to (1,0); symmetry keeps the value readable
	v, err := out.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)
	// right-half indices move together: (0,2) → (1,3)
	v, err = out.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, complex128(2), v)

	_, err = cmatrix.PermuteModes(a, []int{0, 0})
	require.ErrorIs(t, err, cmatrix.ErrBadPermutation)
	_, err = cmatrix.PermuteModes(a, []int{0})
	require.ErrorIs(t, err, cmatrix.ErrBadPermutation)
}

func TestRandomUnitary_IsUnitary(t *testing.T) {
	u, err := cmatrix.RandomUnitary(5, rand.NewPCG(7, 11))
	require.NoError(t, err)

	// U·U† == I within tolerance
	ut := u.ConjTranspose()
	n := u.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var dot complex128
			for k := 0; k < n; k++ {
				a, err := u.At(i, k)
				require.NoError(t, err)
				b, err := ut.At(k, j)
				require.NoError(t, err)
				dot += a * b
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			require.True(t, cscalar.EqualWithinAbs(dot, want, 1e-9),
				"U·U† deviates at (%d,%d): %v", i, j, dot)
		}
	}

	_, err = cmatrix.RandomUnitary(0, rand.NewPCG(1, 2))
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
	_, err = cmatrix.RandomUnitary(3, nil)
	require.ErrorIs(t, err, cmatrix.ErrNilSource)
}

func TestRandomUnitary_Deterministic(t *testing.T) {
	a, err := cmatrix.RandomUnitary(4, rand.NewPCG(42, 1))
	require.NoError(t, err)
	b, err := cmatrix.RandomUnitary(4, rand.NewPCG(42, 1))
	require.NoError(t, err)
	require.Equal(t, a.Raw(), b.Raw())
}

func TestRandomAdjacency_StructureAndSymmetry(t *testing.T) {
	const n = 4
	adj, err := cmatrix.RandomAdjacency(n, rand.NewPCG(3, 9))
	require.NoError(t, err)
	require.Equal(t, 2*n, adj.Rows())
	require.NoError(t, cmatrix.ValidateAdjacency(adj, cmatrix.DefaultEpsilon))

	// bottom-left block is the transpose of the top-right block
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tr, err := adj.At(i, n+j)
			require.NoError(t, err)
			bl, err := adj.At(n+j, i)
			require.NoError(t, err)
			require.True(t, cscalar.EqualWithinAbs(tr, bl, tolAbs))
		}
	}
}
