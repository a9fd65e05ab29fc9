package city

import (
	"cmp"
	"slices"
)

// SortByDensityPercentage returns a copy ordered by DensityPercentage,
// highest first. Records with equal percentages keep their input order.
func SortByDensityPercentage(records []Record) []Record {
	sorted := slices.Clone(records)
	SortInPlace(sorted)
	return sorted
}

// SortInPlace is SortByDensityPercentage without the copy.
func SortInPlace(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.DensityPercentage, a.DensityPercentage)
	})
}
