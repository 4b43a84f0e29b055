package utils

import (
	"math"
	"strconv"
)

// FormatFloat rounds f to round decimal places.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(round))
	return math.Round(f*pow) / pow
}

func FormatFloats(fs []float64, round int32) []float64 {
	res := make([]float64, len(fs))
	for i, f := range fs {
		res[i] = FormatFloat(f, round)
	}
	return res
}

func IntsToStrings(values []int) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = strconv.Itoa(v)
	}
	return res
}
