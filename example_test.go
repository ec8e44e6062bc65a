package montrealer_test

import (
	"fmt"

	"github.com/qphoton/montrealer"
	"github.com/qphoton/montrealer/cmatrix"
)

// ExampleMtl evaluates the all-ones identity: for 2n = 6 modes the
// montrealer counts the (2n-2)!! = 8 closed walks, each with unit
// weight.
func ExampleMtl() {
	ones, err := cmatrix.Ones(6)
	if err != nil {
		panic(err)
	}
	v, err := montrealer.Mtl(ones)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f\n", real(v))
	// Output:
	// 8
}

// ExampleLmtl evaluates the loop identity on the same matrix with unit
// diagonal weights: (n+1)·(2n-2)!! = 32 for n = 3.
func ExampleLmtl() {
	ones, err := cmatrix.Ones(6)
	if err != nil {
		panic(err)
	}
	v, err := montrealer.Lmtl(ones, ones.Diagonal())
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f\n", real(v))
	// Output:
	// 32
}
