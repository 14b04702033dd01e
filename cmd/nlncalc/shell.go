package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/nlncalc/internal/numeral"
	"github.com/DjordjeVuckovic/nlncalc/pkg/utils"
	"github.com/chzyer/readline"
)

const (
	cmdTokens = ":tokens"
	cmdQuit   = ":quit"
	cmdHelp   = ":help"
)

var errQuit = errors.New("quit")

// shell evaluates lines and prints one value or error per line.
type shell struct {
	engine *numeral.Engine
	out    io.Writer
	errOut io.Writer
}

func newShell(engine *numeral.Engine, out, errOut io.Writer) *shell {
	return &shell{engine: engine, out: out, errOut: errOut}
}

// eval prints the value of line and reports whether it evaluated.
func (sh *shell) eval(line string) bool {
	v, err := sh.engine.Parse(line)
	if err != nil {
		fmt.Fprintln(sh.errOut, err)
		return false
	}
	fmt.Fprintln(sh.out, utils.FormatNumber(v))
	return true
}

// evalAll evaluates every non-blank line and keeps going after failures.
func (sh *shell) evalAll(sc *bufio.Scanner) bool {
	ok := true
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !sh.eval(line) {
			ok = false
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(sh.errOut, err)
		return false
	}
	return ok
}

// command handles one interactive input.
func (sh *shell) command(line string) error {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return nil
	case trimmed == cmdQuit:
		return errQuit
	case trimmed == cmdHelp:
		sh.help()
		return nil
	case strings.HasPrefix(trimmed, cmdTokens):
		sh.tokens(strings.TrimSpace(strings.TrimPrefix(trimmed, cmdTokens)))
		return nil
	}
	sh.eval(line)
	return nil
}

func (sh *shell) tokens(line string) {
	tokens, err := sh.engine.Tokenize(line)
	if err != nil {
		fmt.Fprintln(sh.errOut, err)
		return
	}
	for _, t := range tokens {
		fmt.Fprintln(sh.out, t)
	}
}

func (sh *shell) help() {
	fmt.Fprintln(sh.out, "Enter a calculation, e.g. 'zwei plus drei mal vier'.")
	fmt.Fprintf(sh.out, "  %-16s show the tokens of a line\n", cmdTokens+" <line>")
	fmt.Fprintf(sh.out, "  %-16s leave\n", cmdQuit)
}

func runInteractive(sh *shell, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         cmdQuit,
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	sh.out = rl.Stdout()
	sh.errOut = rl.Stderr()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			return nil
		}
		if err := sh.command(line); errors.Is(err, errQuit) {
			return nil
		}
	}
}
