package model

import (
	"fmt"
)

// Breaks are the class boundaries of a classification: b0 is the series
// minimum, the last element is its maximum and every class i covers
// (b[i-1], b[i]], except the first class which also includes b[0].
type Breaks []float64

func (b Breaks) NumClasses() int {
	if len(b) < 2 {
		return 0
	}
	return len(b) - 1
}

func (b Breaks) Lower() float64 {
	return b[0]
}

func (b Breaks) Upper() float64 {
	return b[len(b)-1]
}

// Inner returns the k-1 interior breaks.
func (b Breaks) Inner() []float64 {
	if len(b) < 2 {
		return nil
	}
	return b[1 : len(b)-1]
}

func (b Breaks) DebugString() string {
	return fmt.Sprintf("classes: %v, breaks: %v", b.NumClasses(), []float64(b))
}

type Classification struct {
	Breaks Breaks `json:"breaks"`
	// Labels holds one label in 1..k per input value, in input order.
	Labels     []int   `json:"-"`
	GVF        float64 `json:"gvf"`
	ClassSizes []int   `json:"class_sizes"`
}

func (c *Classification) NumClasses() int {
	if c == nil {
		return 0
	}
	return c.Breaks.NumClasses()
}

func (c *Classification) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.Labels) == 0
}
