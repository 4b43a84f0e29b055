package jenks

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/natural-breaks-csv/common"
	"github.com/uyouii/natural-breaks-csv/model"
)

// Label returns the class of value in 1..k: the first interval (b[i-1], b[i]]
// containing it, the first interval being closed on both ends.
func Label(value float64, breaks model.Breaks) (int, error) {
	if breaks.NumClasses() == 0 {
		return 0, fmt.Errorf("%w: need at least two breaks, got %d", common.ErrorInvalidInput, len(breaks))
	}
	if math.IsNaN(value) || value < breaks.Lower() || value > breaks.Upper() {
		return 0, fmt.Errorf("%w: %v not in [%v, %v]", common.ErrorOutOfRange,
			value, breaks.Lower(), breaks.Upper())
	}

	// b[0] is skipped so the minimum falls into class 1
	return sort.SearchFloat64s(breaks[1:], value) + 1, nil
}

// Classify labels every value, keeping the input order.
func Classify(values []float64, breaks model.Breaks) ([]int, error) {
	labels := make([]int, len(values))
	for i, v := range values {
		label, err := Label(v, breaks)
		if err != nil {
			return nil, fmt.Errorf("value at index %d: %w", i, err)
		}
		labels[i] = label
	}
	return labels, nil
}

// ClassSizes counts the labels of each class; res[0] is class 1.
func ClassSizes(labels []int, nClass int) []int {
	res := make([]int, nClass)
	for _, label := range labels {
		if label >= 1 && label <= nClass {
			res[label-1]++
		}
	}
	return res
}

// Groups splits values by label; res[0] holds the values of class 1.
// Empty classes get an empty group.
func Groups(values []float64, labels []int, nClass int) [][]float64 {
	res := make([][]float64, nClass)
	for i := range res {
		res[i] = []float64{}
	}
	for i, label := range labels {
		if label >= 1 && label <= nClass {
			res[label-1] = append(res[label-1], values[i])
		}
	}
	return res
}
