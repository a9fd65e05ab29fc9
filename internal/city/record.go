// Package city parses city statistics and derives each city's density as a
// percentage of the densest city in the same batch.
package city

import (
	_ "embed"
)

// Header is the column header expected on the first line of the input.
// The parser discards the first line positionally and does not check it.
const Header = "city,population,area,density,country"

// DefaultDataset is the ten-city sample shipped with the binary.
//
//go:embed cities.csv
var DefaultDataset string

// Record is one parsed input row plus its derived density percentage.
type Record struct {
	Name              string  `json:"city" yaml:"city"`
	Population        int64   `json:"population" yaml:"population"`
	Area              float64 `json:"area" yaml:"area"`
	Density           float64 `json:"density" yaml:"density"`
	Country           string  `json:"country" yaml:"country"`
	DensityPercentage int     `json:"density_percentage" yaml:"density_percentage"`

	// Line is the 1-based line number of the row in the input.
	Line int `json:"-" yaml:"-"`
}

// SetDensityPercentage derives DensityPercentage from the batch maximum.
func (r *Record) SetDensityPercentage(maxDensity float64) {
	r.DensityPercentage = Percentage(r.Density, maxDensity)
}
