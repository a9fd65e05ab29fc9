package city

import "math"

// MaxDensity returns the highest density in the batch.
func MaxDensity(records []Record) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyDataset
	}

	highest := records[0].Density
	for _, r := range records[1:] {
		if r.Density > highest {
			highest = r.Density
		}
	}
	return highest, nil
}

// Percentage returns density as a whole percentage of maxDensity, rounding
// half away from zero. A non-positive maximum gives 0, as does any ratio
// that is not a finite number.
func Percentage(density, maxDensity float64) int {
	if maxDensity <= 0 {
		return 0
	}
	// Divide first: density*100 overflows for densities near MaxFloat64.
	pct := math.Round(density / maxDensity * 100)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return int(pct)
}

// Annotate sets DensityPercentage on every record in place and returns the
// batch maximum it was computed against.
func Annotate(records []Record) (float64, error) {
	maxDensity, err := MaxDensity(records)
	if err != nil {
		return 0, err
	}

	for i := range records {
		records[i].SetDensityPercentage(maxDensity)
	}
	return maxDensity, nil
}

// WithDensityPercentages returns annotated copies of records and leaves the
// input untouched.
func WithDensityPercentages(records []Record, maxDensity float64) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.SetDensityPercentage(maxDensity)
		out[i] = r
	}
	return out
}
