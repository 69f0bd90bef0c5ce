package dataset

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrFileNotFound is returned by Load when the CSV path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnknownColumn is returned when a column name is not in the table.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNotNumeric is returned when a numeric operation targets a text column.
	ErrNotNumeric = errors.New("column is not numeric")
	// ErrZeroDenominator is returned by ThresholdSplit.Ratio when no row is at or below the mean.
	ErrZeroDenominator = errors.New("ratio denominator is zero")
)

// LoadError reports any load failure other than a missing file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// notFound keeps both the sentinel and the fs error matchable.
type notFound struct {
	path string
	err  error
}

func (e *notFound) Error() string {
	return fmt.Sprintf("%s: %v", e.path, ErrFileNotFound)
}

func (e *notFound) Is(target error) bool {
	return target == ErrFileNotFound || target == fs.ErrNotExist
}

func (e *notFound) Unwrap() error { return e.err }
