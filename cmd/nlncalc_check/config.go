package main

import (
	"flag"
	"fmt"
)

const defaultJSONOutput = "nlncalc_check.json"

type cliConfig struct {
	SuitePath string
	Format    string
	Output    string
	FoldCase  bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "internal/numeral/testdata/german.yaml", "Path to expectation suite YAML")
	flag.StringVar(&cfg.Format, "format", "table", "Report format: table or json")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	flag.BoolVar(&cfg.FoldCase, "fold-case", false, "Match number words case-insensitively")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	switch c.Format {
	case "table", "json":
	default:
		return fmt.Errorf("unknown format %q, want table or json", c.Format)
	}
	if c.SuitePath == "" {
		return fmt.Errorf("suite path is required")
	}
	return nil
}

func (c cliConfig) outputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return defaultJSONOutput
}
