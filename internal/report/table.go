package report

import (
	"fmt"
	"io"

	"citydensity/internal/city"
	"citydensity/internal/render"
)

// Table is a parsed batch that annotates and sorts itself on construction.
// It produces the same rows as Run.
type Table struct {
	cities     []city.Record
	maxDensity float64
}

// NewTable parses data, computes percentages and sorts the cities in place.
func NewTable(data string) (*Table, error) {
	cities, err := city.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t := &Table{cities: cities}
	if t.maxDensity, err = city.Annotate(t.cities); err != nil {
		return nil, err
	}
	city.SortInPlace(t.cities)
	return t, nil
}

// Cities returns the sorted records. Callers must not modify them.
func (t *Table) Cities() []city.Record {
	return t.cities
}

// MaxDensity returns the density every percentage was computed against.
func (t *Table) MaxDensity() float64 {
	return t.maxDensity
}

// Print writes one table row per city.
func (t *Table) Print(w io.Writer) error {
	return render.Write(w, t.cities, render.Options{Format: render.FormatTable})
}
