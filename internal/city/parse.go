package city

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// fieldCount is the number of comma separated cells in every data row:
// name, population, area, density, country.
const fieldCount = 5

// Parse turns a CSV blob into records in input order.
//
// Blank lines before the header and after the last row are ignored. The
// first non-blank line is the header and is skipped. Cells are split on bare
// commas; quoting is not supported, so a comma inside a field makes the row
// malformed. Every malformed row is reported, combined into one error that
// matches ErrMalformedRow, with line numbers counted on the input as given.
// Empty or header-only input yields no records and no error.
func Parse(data string) ([]Record, error) {
	lines := strings.Split(data, "\n")

	first := 0
	for first < len(lines) && isBlank(lines[first]) {
		first++
	}
	last := len(lines)
	for last > first && isBlank(lines[last-1]) {
		last--
	}
	if first == last {
		return nil, nil
	}

	body := lines[first+1 : last]
	records := make([]Record, 0, len(body))

	var errs error
	for i, line := range body {
		line = strings.TrimSuffix(line, "\r")
		if i == len(body)-1 {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		rec, err := parseLine(line, first+i+2)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	if errs != nil {
		return nil, errs
	}

	return records, nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func parseLine(line string, lineNo int) (Record, error) {
	cells := strings.Split(line, ",")
	if len(cells) != fieldCount {
		return Record{}, &RowError{
			Line:   lineNo,
			Cells:  len(cells),
			Reason: fmt.Sprintf("expected %d cells, got %d", fieldCount, len(cells)),
		}
	}

	population, err := strconv.ParseInt(strings.TrimSpace(cells[1]), 10, 64)
	if err != nil {
		return Record{}, cellError(lineNo, "population", cells[1])
	}
	area, ok := parseFinite(cells[2])
	if !ok {
		return Record{}, cellError(lineNo, "area", cells[2])
	}
	density, ok := parseFinite(cells[3])
	if !ok {
		return Record{}, cellError(lineNo, "density", cells[3])
	}

	return Record{
		Name:       cells[0],
		Population: population,
		Area:       area,
		Density:    density,
		Country:    cells[4],
		Line:       lineNo,
	}, nil
}

// parseFinite parses a decimal cell, rejecting NaN and infinities that
// strconv.ParseFloat would otherwise accept.
func parseFinite(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func cellError(lineNo int, field, value string) *RowError {
	return &RowError{
		Line:   lineNo,
		Cells:  fieldCount,
		Reason: fmt.Sprintf("%s %q is not a number", field, value),
	}
}
