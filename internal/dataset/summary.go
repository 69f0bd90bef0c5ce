package dataset

import "sort"

// Entry is one distinct value of a column and how often it occurs.
type Entry struct {
	Value   string
	Count   int
	Missing bool
}

// ColumnSummary is the value-count breakdown of one column, missing cells
// included, in descending count order.
type ColumnSummary struct {
	Column  string
	Entries []Entry
}

// Total is the number of rows the summary covers.
func (s ColumnSummary) Total() int {
	n := 0
	for _, e := range s.Entries {
		n += e.Count
	}
	return n
}

// Labels returns the entry values in summary order.
func (s ColumnSummary) Labels() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Value
	}
	return out
}

// Counts returns the entry counts in summary order.
func (s ColumnSummary) Counts() []float64 {
	out := make([]float64, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = float64(e.Count)
	}
	return out
}

// Count returns the occurrences of value, or of missing cells when missing is set.
func (s ColumnSummary) Count(value string, missing bool) int {
	for _, e := range s.Entries {
		if e.Missing == missing && (missing || e.Value == value) {
			return e.Count
		}
	}
	return 0
}

// SummarizeColumn counts the distinct values of column. Ties keep the order
// in which values first appear.
func (t *Table) SummarizeColumn(column string) (ColumnSummary, error) {
	s, err := t.Column(column)
	if err != nil {
		return ColumnSummary{}, err
	}
	var entries []Entry
	index := make(map[string]int)
	missing := -1
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			if missing < 0 {
				missing = len(entries)
				entries = append(entries, Entry{Value: MissingLabel, Missing: true})
			}
			entries[missing].Count++
			continue
		}
		v := CellText(e)
		j, ok := index[v]
		if !ok {
			j = len(entries)
			index[v] = j
			entries = append(entries, Entry{Value: v})
		}
		entries[j].Count++
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Count > entries[b].Count
	})
	return ColumnSummary{Column: column, Entries: entries}, nil
}
