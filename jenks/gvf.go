package jenks

import (
	"fmt"

	"github.com/uyouii/natural-breaks-csv/common"
	"github.com/uyouii/natural-breaks-csv/model"
)

// WithinClassVariance is the SDCM of a labeling: the sum over classes of
// the squared deviations from the class mean.
func WithinClassVariance(values []float64, labels []int, nClass int) float64 {
	var sdcm float64
	for _, group := range Groups(values, labels, nClass) {
		sdcm += sumSquaredDeviations(group)
	}
	return sdcm
}

// GoodnessOfVarianceFit returns (SDAM - SDCM) / SDAM for the classification
// of values by breaks. 1 is a perfect fit; a constant series always fits.
func GoodnessOfVarianceFit(values []float64, breaks model.Breaks) (float64, error) {
	labels, err := Classify(values, breaks)
	if err != nil {
		return 0, err
	}
	return goodnessOfVarianceFit(values, labels, breaks.NumClasses()), nil
}

func goodnessOfVarianceFit(values []float64, labels []int, nClass int) float64 {
	sdam := sumSquaredDeviations(values)
	if sdam == 0 {
		return 1
	}
	sdcm := WithinClassVariance(values, labels, nClass)
	return (sdam - sdcm) / sdam
}

// OptimalClassCount returns the smallest class count in [2, maxClass] whose
// breaks reach a GVF of threshold. maxClass is capped at the series length
// and returned when no smaller count is good enough. A single value gives 1.
func OptimalClassCount(values []float64, maxClass int, threshold float64) (int, error) {
	if threshold <= 0 || threshold > 1 {
		return 0, fmt.Errorf("%w: gvf threshold must be in (0, 1], got %v", common.ErrorInvalidInput, threshold)
	}
	if err := validate(values, 1); err != nil {
		return 0, err
	}
	maxClass = min(maxClass, len(values))
	if maxClass < 2 {
		return 1, nil
	}

	// rows below maxClass hold the best splits for every smaller class count
	sorted := sortedCopy(values)
	m := newMatrices(maxClass, len(sorted))
	m.fit(sorted)

	for nClass := 2; nClass < maxClass; nClass++ {
		labels, err := Classify(values, m.breaks(sorted, nClass))
		if err != nil {
			return 0, err
		}
		if goodnessOfVarianceFit(values, labels, nClass) >= threshold {
			return nClass, nil
		}
	}
	return maxClass, nil
}
