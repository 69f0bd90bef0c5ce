package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ThresholdSplit partitions a numeric column by its mean.
type ThresholdSplit struct {
	Column       string
	Mean         float64
	Above        int
	BelowOrEqual int
}

// Ratio is Above divided by BelowOrEqual. It fails with ErrZeroDenominator
// instead of producing Inf.
func (s ThresholdSplit) Ratio() (float64, error) {
	if s.BelowOrEqual == 0 {
		return 0, fmt.Errorf("%w: %s has no values at or below %.2f", ErrZeroDenominator, s.Column, s.Mean)
	}
	return float64(s.Above) / float64(s.BelowOrEqual), nil
}

// ComputeThresholdSplit counts the values of column strictly above its mean
// and those at or below it. Missing cells fall in neither group.
func (t *Table) ComputeThresholdSplit(column string) (ThresholdSplit, error) {
	x, err := t.NumericValues(column)
	if err != nil {
		return ThresholdSplit{}, err
	}
	return splitValues(column, x), nil
}

func splitValues(column string, x []float64) ThresholdSplit {
	sp := ThresholdSplit{Column: column}
	if len(x) == 0 {
		return sp
	}
	sp.Mean = stat.Mean(x, nil)
	for _, v := range x {
		if v > sp.Mean {
			sp.Above++
		} else {
			sp.BelowOrEqual++
		}
	}
	return sp
}
