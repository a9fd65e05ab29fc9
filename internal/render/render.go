// Package render writes annotated city records as a fixed-width text table
// or as JSON/YAML documents.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"citydensity/internal/city"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for any format other than table, json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a flag or config value to a Format. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json or yaml)", ErrUnknownFormat, s)
	}
}

// Column is one fixed-width table column.
type Column struct {
	Title string
	Width int
	Left  bool // pad on the right instead of the left
}

// Columns is the table layout, in output order.
var Columns = []Column{
	{Title: "city", Width: 18, Left: true},
	{Title: "population", Width: 10},
	{Title: "area", Width: 8},
	{Title: "density", Width: 8},
	{Title: "country", Width: 18},
	{Title: "pct", Width: 6},
}

// Options controls Write.
type Options struct {
	Format Format
	Header bool // table only
	Color  bool // bold header when the terminal supports it
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// FormatRow renders one record as a table row without a trailing newline.
// Cells are padded to their column width and never truncated.
func FormatRow(r city.Record) string {
	return joinCells([]string{
		r.Name,
		strconv.FormatInt(r.Population, 10),
		formatNumber(r.Area),
		formatNumber(r.Density),
		r.Country,
		strconv.Itoa(r.DensityPercentage),
	})
}

// HeaderRow renders the column titles with the row layout.
func HeaderRow() string {
	titles := make([]string, len(Columns))
	for i, c := range Columns {
		titles[i] = c.Title
	}
	return joinCells(titles)
}

// Write renders records to w in the requested format.
func Write(w io.Writer, records []city.Record, opts Options) error {
	switch opts.Format {
	case "", FormatTable:
		return writeTable(w, records, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNil(records)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(records)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

func writeTable(w io.Writer, records []city.Record, opts Options) error {
	if opts.Header {
		header := HeaderRow()
		if opts.Color {
			header = headerStyle.Render(header)
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(w, FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}

func joinCells(cells []string) string {
	var b strings.Builder
	for i, c := range Columns {
		if c.Left {
			b.WriteString(runewidth.FillRight(cells[i], c.Width))
		} else {
			b.WriteString(runewidth.FillLeft(cells[i], c.Width))
		}
	}
	return b.String()
}

// formatNumber prints the shortest decimal form, so 6340 stays "6340".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nonNil(records []city.Record) []city.Record {
	if records == nil {
		return []city.Record{}
	}
	return records
}
