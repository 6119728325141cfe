package ffsroot

import "math/big"

// squareMod64[r] is true when r is a square modulo 64. Only 12 of the 64
// residues qualify, so most candidates skip the square root entirely.
var squareMod64 [64]bool

func init() {
	for i := 0; i < 64; i++ {
		squareMod64[(i*i)%64] = true
	}
}

// Candidate returns expected + k*n.
func Candidate(n, expected *big.Int, k int64) *big.Int {
	c := new(big.Int).Mul(n, big.NewInt(k))
	return c.Add(c, expected)
}

// IsPerfectSquare reports whether x is the square of a non-negative
// integer and returns that root. Negative values are never squares.
func IsPerfectSquare(x *big.Int) (*big.Int, bool) {
	root := new(big.Int)
	if !isSquare(x, root, new(big.Int)) {
		return nil, false
	}
	return root, true
}

// isSquare is the allocation free form of IsPerfectSquare. On success root
// holds the square root; sq is scratch space.
func isSquare(x, root, sq *big.Int) bool {
	switch x.Sign() {
	case -1:
		return false
	case 0:
		root.SetInt64(0)
		return true
	}
	if !squareMod64[uint(x.Bits()[0])&63] {
		return false
	}
	root.Sqrt(x)
	return sq.Mul(root, root).Cmp(x) == 0
}
