package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeThresholdSplit(t *testing.T) {
	tests := []struct {
		name      string
		cells     []string
		wantMean  float64
		wantAbove int
		wantBelow int
		wantRatio float64
		wantErr   error
	}{
		{
			name:      "even split",
			cells:     []string{"1", "2", "3", "4"},
			wantMean:  2.5,
			wantAbove: 2,
			wantBelow: 2,
			wantRatio: 1.0,
		},
		{
			name:      "all equal",
			cells:     []string{"5", "5", "5"},
			wantMean:  5,
			wantAbove: 0,
			wantBelow: 3,
			wantRatio: 0,
		},
		{
			name:      "missing cells excluded",
			cells:     []string{"1", "", "9", "2"},
			wantMean:  4,
			wantAbove: 1,
			wantBelow: 2,
			wantRatio: 0.5,
		},
		{
			name:    "no values",
			cells:   []string{"", ""},
			wantErr: ErrZeroDenominator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := [][]string{{"v"}}
			for _, c := range tt.cells {
				records = append(records, []string{c})
			}
			// A column of only missing cells is detected as text; force a
			// numeric split through the value path instead.
			var sp ThresholdSplit
			if tt.wantErr != nil {
				sp = splitValues("v", nil)
			} else {
				tbl, err := FromRecords(records)
				require.NoError(t, err)
				sp, err = tbl.ComputeThresholdSplit("v")
				require.NoError(t, err)
			}

			ratio, err := sp.Ratio()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantMean, sp.Mean, 1e-12)
			assert.Equal(t, tt.wantAbove, sp.Above)
			assert.Equal(t, tt.wantBelow, sp.BelowOrEqual)
			assert.InDelta(t, tt.wantRatio, ratio, 1e-12)
		})
	}
}

func TestComputeThresholdSplit_ApplicantIncome(t *testing.T) {
	tbl := loadSample(t)

	sp, err := tbl.ComputeThresholdSplit("ApplicantIncome")
	require.NoError(t, err)

	assert.Equal(t, 4, sp.Above)
	assert.Equal(t, 3, sp.BelowOrEqual)
	ratio, err := sp.Ratio()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, ratio, 1e-12)
}

func TestComputeThresholdSplit_Errors(t *testing.T) {
	tbl := loadSample(t)

	_, err := tbl.ComputeThresholdSplit("Gender")
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = tbl.ComputeThresholdSplit("Income")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
