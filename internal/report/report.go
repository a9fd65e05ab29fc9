// Package report runs the parse, annotate, sort and render stages over one
// input blob.
package report

import (
	"fmt"
	"io"
	"time"

	"citydensity/internal/city"
	"citydensity/internal/logging"
	"citydensity/internal/render"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options describes one report run.
type Options struct {
	Input  string    // "" for the built-in dataset, "-" for Stdin, else a path
	Stdin  io.Reader // defaults to os.Stdin
	Render render.Options
}

// Run renders the density report for opts.Input to w. Each stage logs its
// count and duration at debug level.
func Run(opts Options, w io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	stage := time.Now()
	data, err := ReadInput(opts.Input, opts.Stdin)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryInput).Debug("Input loaded",
		zap.String("source", describeInput(opts.Input)),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(stage)))

	stage = time.Now()
	records, err := parse(data)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryParse).Debug("Input parsed",
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(stage)))

	stage = time.Now()
	sorted, maxDensity, err := annotateAndSort(records)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryAnnotate).Debug("Records annotated",
		zap.Int("records", len(sorted)),
		zap.Float64("max_density", maxDensity),
		zap.Duration("elapsed", time.Since(stage)))

	stage = time.Now()
	if err := render.Write(w, sorted, opts.Render); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	logging.For(logger, logging.CategoryRender).Debug("Report rendered",
		zap.String("format", string(opts.Render.Format)),
		zap.Duration("elapsed", time.Since(stage)))

	return nil
}

// Build parses data and returns annotated records sorted by density
// percentage, plus the batch maximum density.
func Build(data string) ([]city.Record, float64, error) {
	records, err := parse(data)
	if err != nil {
		return nil, 0, err
	}
	return annotateAndSort(records)
}

func parse(data string) ([]city.Record, error) {
	records, err := city.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	return records, nil
}

// annotateAndSort leaves records untouched and returns sorted annotated copies.
func annotateAndSort(records []city.Record) ([]city.Record, float64, error) {
	maxDensity, err := city.MaxDensity(records)
	if err != nil {
		return nil, 0, err
	}

	annotated := city.WithDensityPercentages(records, maxDensity)
	return city.SortByDensityPercentage(annotated), maxDensity, nil
}
