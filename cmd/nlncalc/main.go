package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/nlncalc/internal/numeral"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitEvalError  = 1
	ExitUsageError = 2
)

type flags struct {
	expr        string
	foldCase    bool
	historyFile string
	debug       bool
}

func main() {
	f := parseFlags()
	if f.debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var opts []numeral.Option
	if f.foldCase {
		opts = append(opts, numeral.WithFoldCase())
	}
	engine, err := numeral.NewEngine(opts...)
	if err != nil {
		slog.Error("Failed to create engine", "error", err)
		os.Exit(ExitUsageError)
	}

	sh := newShell(engine, os.Stdout, os.Stderr)

	switch {
	case f.expr != "":
		if !sh.eval(f.expr) {
			os.Exit(ExitEvalError)
		}
	case !isTerminal(os.Stdin):
		if !sh.evalAll(bufio.NewScanner(os.Stdin)) {
			os.Exit(ExitEvalError)
		}
	default:
		if err := runInteractive(sh, f.historyFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitUsageError)
		}
	}
	os.Exit(ExitSuccess)
}

func parseFlags() flags {
	f := flags{}

	flag.StringVar(&f.expr, "e", "", "Evaluate a single line and exit")
	flag.BoolVar(&f.foldCase, "fold-case", false, "Match number words case-insensitively")
	flag.StringVar(&f.historyFile, "history", defaultHistoryFile(), "Path to the interactive history file")
	flag.BoolVar(&f.debug, "debug", false, "Enable debug output to stderr")

	flag.Parse()
	return f
}

func isTerminal(file *os.File) bool {
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func defaultHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nlncalc_history")
}
