package jenks

import (
	"math"

	"github.com/uyouii/natural-breaks-csv/model"
)

// matrices are the Fisher-Jenks dynamic programming tables. Row i describes
// splits into i+1 classes, column j the prefix sorted[0..j].
type matrices struct {
	// start index of the last class in the best split of the prefix
	lowerClassLimits [][]int
	// sum of squared deviations of the best split of the prefix
	varianceCombinations [][]float64
}

func newMatrices(nClass, n int) *matrices {
	m := &matrices{
		lowerClassLimits:     make([][]int, nClass),
		varianceCombinations: make([][]float64, nClass),
	}
	for i := 0; i < nClass; i++ {
		m.lowerClassLimits[i] = make([]int, n)
		if i == 0 {
			m.varianceCombinations[i] = make([]float64, n)
			continue
		}
		m.varianceCombinations[i] = initFloats(n, math.Inf(1))
	}
	return m
}

// fit fills the tables for an ascending series. For each prefix end j the
// last class grows leftwards one value at a time, so its sum of squared
// deviations is updated with Welford's method instead of Σx²-n·mean².
//
// Candidates are scanned from the largest start index down and accepted on
// <=, so among equal costs the smallest split index wins.
func (m *matrices) fit(sorted []float64) {
	nClass := len(m.lowerClassLimits)

	for j := range sorted {
		var count, mean, m2 float64
		for start := j; start >= 0; start-- {
			x := sorted[start]
			count++
			delta := x - mean
			mean += delta / count
			m2 += delta * (x - mean)

			for i := 1; i < nClass && i <= start; i++ {
				candidate := m.varianceCombinations[i-1][start-1] + m2
				if candidate <= m.varianceCombinations[i][j] {
					m.varianceCombinations[i][j] = candidate
					m.lowerClassLimits[i][j] = start
				}
			}
		}
		m.lowerClassLimits[0][j] = 0
		m.varianceCombinations[0][j] = m2
	}
}

// breaks backtracks the best split of the whole series into nClass classes,
// nClass being at most the number of table rows.
func (m *matrices) breaks(sorted []float64, nClass int) model.Breaks {
	n := len(sorted)
	res := make(model.Breaks, nClass+1)
	res[0] = sorted[0]
	res[nClass] = sorted[n-1]

	j := n - 1
	for i := nClass - 1; i > 0; i-- {
		start := m.lowerClassLimits[i][j]
		res[i] = sorted[start-1]
		j = start - 1
	}
	return res
}

// totalVariance is the within-class sum of squared deviations of the best
// split of the whole series into nClass classes.
func (m *matrices) totalVariance(nClass int) float64 {
	row := m.varianceCombinations[nClass-1]
	return row[len(row)-1]
}

// ComputeBreaks returns the nClass+1 Jenks natural breaks of values: the
// minimum, the nClass-1 interior breaks and the maximum. Each interior break
// is the largest value of the class below it. values is not modified.
//
// It fails with common.ErrorInvalidInput if nClass < 1, if there are fewer
// values than classes or if a value is NaN or infinite. Identical values
// are valid and yield collapsed breaks.
func ComputeBreaks(values []float64, nClass int) (model.Breaks, error) {
	if err := validate(values, nClass); err != nil {
		return nil, err
	}

	sorted := sortedCopy(values)
	m := newMatrices(nClass, len(sorted))
	m.fit(sorted)

	return m.breaks(sorted, nClass), nil
}
