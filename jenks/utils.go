package jenks

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/natural-breaks-csv/common"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func validate(values []float64, nClass int) error {
	if nClass < 1 {
		return fmt.Errorf("%w: class count must be positive, got %d", common.ErrorInvalidInput, nClass)
	}
	if len(values) < nClass {
		return fmt.Errorf("%w: %d values for %d classes", common.ErrorInvalidInput, len(values), nClass)
	}
	if floats.HasNaN(values) {
		return fmt.Errorf("%w: series contains NaN", common.ErrorInvalidInput)
	}
	for i, v := range values {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w: infinite value at index %d", common.ErrorInvalidInput, i)
		}
	}
	return nil
}

func sortedCopy(values []float64) []float64 {
	sorted := append(make([]float64, 0, len(values)), values...)
	sort.Float64s(sorted)
	return sorted
}

// sumSquaredDeviations returns the sum of squared deviations of x from its
// mean, zero for an empty slice.
func sumSquaredDeviations(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	mean := stat.Mean(x, nil)
	var res float64
	for _, v := range x {
		d := v - mean
		res += d * d
	}
	return res
}

func initFloats(n int, value float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = value
	}
	return res
}
