// SPDX-License-Identifier: MIT

package pca_test

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/powerpca/matrix"
	"github.com/katalvlaran/powerpca/pca"
)

// ExampleBuildBasis extracts the components of data whose second variable is
// constant: one real component, one zero-padded column.
func ExampleBuildBasis() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 5},
		{2, 5},
		{3, 5},
	})
	b, err := pca.BuildBasis(X)
	if err != nil {
		fmt.Println(err)
		return
	}
	first, _ := b.Column(0)
	fmt.Printf("columns=%d found=%d\n", b.Len(), b.Found())
	fmt.Printf("|v0|=[%.0f %.0f] λ0=%.0f\n", math.Abs(first[0]), math.Abs(first[1]), b.Values()[0])
	// Output:
	// columns=2 found=1
	// |v0|=[1 0] λ0=1
}

// ExampleModel_Save fits a model and writes the persisted basis.
func ExampleModel_Save() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{3, 0},
	})
	m := pca.NewModel()
	if err := m.Fit(X); err != nil {
		fmt.Println(err)
		return
	}
	_ = m.Save(os.Stdout)
	// Output:
	// 1,0
	// 0,0
}
