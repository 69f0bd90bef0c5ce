package dataset

import (
	"math"
	"slices"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NumericStats is one row of the numeric describe table.
type NumericStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Q50    float64
	Q75    float64
	Max    float64
}

// CategoricalStats is one row of the categorical describe table.
type CategoricalStats struct {
	Column string
	Count  int
	Unique int
	Top    string
	Freq   int
}

// DescribeNumeric summarizes every int and float column. Missing cells are
// skipped; a column with no values reports Count 0 and NaN elsewhere.
func (t *Table) DescribeNumeric() []NumericStats {
	var out []NumericStats
	for _, name := range t.df.Names() {
		s := t.df.Col(name)
		if !IsNumeric(s) {
			continue
		}
		out = append(out, describeValues(name, values(s)))
	}
	return out
}

func describeValues(name string, x []float64) NumericStats {
	st := NumericStats{Column: name, Count: len(x)}
	if len(x) == 0 {
		nan := math.NaN()
		st.Mean, st.Std, st.Min, st.Max = nan, nan, nan, nan
		st.Q25, st.Q50, st.Q75 = nan, nan, nan
		return st
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)

	st.Mean = stat.Mean(x, nil)
	st.Std = math.NaN()
	if len(x) > 1 {
		st.Std = stat.StdDev(x, nil)
	}
	st.Min = floats.Min(x)
	st.Max = floats.Max(x)
	st.Q25 = quantile(sorted, 0.25)
	st.Q50 = quantile(sorted, 0.50)
	st.Q75 = quantile(sorted, 0.75)
	return st
}

// quantile interpolates linearly between the closest ranks of sorted (R-7).
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// DescribeCategorical summarizes every non-numeric column. Count and Unique
// ignore missing cells; Top ties go to the value seen first.
func (t *Table) DescribeCategorical() []CategoricalStats {
	var out []CategoricalStats
	for _, name := range t.df.Names() {
		s := t.df.Col(name)
		if IsNumeric(s) {
			continue
		}
		out = append(out, describeCategories(name, s))
	}
	return out
}

func describeCategories(name string, s series.Series) CategoricalStats {
	st := CategoricalStats{Column: name}
	counts := make(map[string]int)
	var order []string
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		v := CellText(e)
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
		st.Count++
	}
	st.Unique = len(order)
	for _, v := range order {
		if counts[v] > st.Freq {
			st.Top, st.Freq = v, counts[v]
		}
	}
	return st
}
