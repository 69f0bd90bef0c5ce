package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeColumn_CountsMissing(t *testing.T) {
	tbl, err := FromRecords([][]string{{"c"}, {"A"}, {"A"}, {"B"}, {""}})
	require.NoError(t, err)

	sum, err := tbl.SummarizeColumn("c")
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Value: "A", Count: 2},
		{Value: "B", Count: 1},
		{Value: MissingLabel, Count: 1, Missing: true},
	}, sum.Entries)
	assert.Equal(t, 4, sum.Total())
}

func TestSummarizeColumn_TiesKeepFirstSeen(t *testing.T) {
	tbl, err := FromRecords([][]string{{"c"}, {""}, {"B"}, {"A"}, {"A"}, {"B"}, {"C"}})
	require.NoError(t, err)

	sum, err := tbl.SummarizeColumn("c")
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", MissingLabel, "C"}, sum.Labels())
	assert.Equal(t, []float64{2, 2, 1, 1}, sum.Counts())
}

func TestSummarizeColumn_Gender(t *testing.T) {
	tbl := loadSample(t)

	sum, err := tbl.SummarizeColumn("Gender")
	require.NoError(t, err)

	assert.Equal(t, "Gender", sum.Column)
	assert.Equal(t, 4, sum.Count("Male", false))
	assert.Equal(t, 2, sum.Count("Female", false))
	assert.Equal(t, 1, sum.Count("", true))
	assert.Equal(t, []string{"Male", "Female", MissingLabel}, sum.Labels())
}

func TestSummarizeColumn_NumericKeys(t *testing.T) {
	tbl := loadSample(t)

	sum, err := tbl.SummarizeColumn("Loan_Amount_Term")
	require.NoError(t, err)
	assert.Equal(t, []string{"360", "180"}, sum.Labels())

	sum, err = tbl.SummarizeColumn("Credit_History")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", MissingLabel, "0"}, sum.Labels(), "ties keep first-seen order")
	assert.Equal(t, []float64{5, 1, 1}, sum.Counts())
}

func TestSummarizeColumn_Repeatable(t *testing.T) {
	tbl := loadSample(t)

	first, err := tbl.SummarizeColumn("Married")
	require.NoError(t, err)
	second, err := tbl.SummarizeColumn("Married")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSummarizeColumn_Unknown(t *testing.T) {
	tbl := loadSample(t)

	_, err := tbl.SummarizeColumn("Salary")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
