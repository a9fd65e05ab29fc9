package main

import (
	"fmt"
	"os"

	"citydensity/internal/config"
	"citydensity/internal/logging"
	"citydensity/internal/render"
	"citydensity/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliOptions holds flag values for one command instance.
type cliOptions struct {
	verbose    bool
	configPath string
	input      string
	format     string
	header     bool
	color      bool
	writeConf  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "citydensity",
		Short: "Rank cities by population density relative to the densest city",
		Long: `citydensity reads a CSV of city statistics, expresses each city's
population density as a percentage of the densest city in the batch,
and prints the cities sorted by that percentage, highest first.

Input columns: city,population,area,density,country
The first line is treated as a header and skipped.

Without --input the built-in ten-city dataset is used.

Examples:
  citydensity
  citydensity --input cities.csv --header
  cat cities.csv | citydensity --input - --format json
  citydensity --format yaml --header --write-config citydensity.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file (YAML); missing file uses defaults")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "CSV file to read, or - for stdin (default: built-in dataset)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(render.FormatTable), "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&opts.header, "header", false, "Print a column header line (table format)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "Style the header line when the terminal supports it")
	cmd.Flags().StringVar(&opts.writeConf, "write-config", "", "Write the effective configuration to this YAML file and exit")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config, applies explicitly set flags over it and builds the logger.
func (o *cliOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = o.input
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("header") {
		cfg.Output.Header = o.header
	}
	if flags.Changed("color") {
		cfg.Output.Color = o.color
	}

	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	logging.For(logger, logging.CategoryBoot).Debug("Configuration loaded",
		zap.String("config", o.configPath),
		zap.String("input", cfg.Input),
		zap.String("format", cfg.Output.Format))
	return nil
}

// run renders the report to the command's stdout, or saves the effective
// configuration when --write-config is given.
func (o *cliOptions) run(cmd *cobra.Command) error {
	format, err := render.ParseFormat(o.cfg.Output.Format)
	if err != nil {
		return err
	}

	if o.writeConf != "" {
		o.cfg.Output.Format = string(format)
		if err := o.cfg.Save(o.writeConf); err != nil {
			return err
		}
		logging.For(o.logger, logging.CategoryBoot).Info("Configuration written",
			zap.String("path", o.writeConf))
		fmt.Fprintf(cmd.ErrOrStderr(), "Configuration written to %s\n", o.writeConf)
		return nil
	}

	return report.Run(report.Options{
		Input: o.cfg.Input,
		Stdin: cmd.InOrStdin(),
		Render: render.Options{
			Format: format,
			Header: o.cfg.Output.Header,
			Color:  o.cfg.Output.Color,
		},
	}, cmd.OutOrStdout(), o.logger)
}
