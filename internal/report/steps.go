package report

import (
	"berkotech.co/loaneda/internal/config"
)

// Kind selects how a step charts its column.
type Kind string

// Step kinds.
const (
	Bar       Kind = config.KindBar
	Pie       Kind = config.KindPie
	Threshold Kind = config.KindThreshold
)

// Step is one per-column analysis.
type Step struct {
	Column string
	Kind   Kind
	Title  string
}

// DefaultSteps is the loan dataset walk-through, in output order.
func DefaultSteps() []Step {
	return []Step{
		{Column: "Gender", Kind: Bar},
		{Column: "Married", Kind: Pie, Title: "Marital Status Distribution"},
		{Column: "Dependents", Kind: Bar},
		{Column: "Education", Kind: Bar},
		{Column: "Self_Employed", Kind: Bar},
		{Column: "ApplicantIncome", Kind: Threshold, Title: "Ratio of People with Income Above Average to Below Average"},
		{Column: "Credit_History", Kind: Bar},
		{Column: "Property_Area", Kind: Bar},
		{Column: "Loan_Status", Kind: Bar},
		{Column: "Loan_Amount_Term", Kind: Bar},
	}
}

// StepsFromConfig converts configured steps, falling back to DefaultSteps.
func StepsFromConfig(cfg []config.StepConfig) []Step {
	if len(cfg) == 0 {
		return DefaultSteps()
	}
	steps := make([]Step, len(cfg))
	for i, s := range cfg {
		steps[i] = Step{Column: s.Column, Kind: Kind(s.Kind), Title: s.Title}
	}
	return steps
}
