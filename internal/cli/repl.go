package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mjakub/bignum/internal/format"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/integer"
	"github.com/mjakub/bignum/internal/lazy"
	"github.com/mjakub/bignum/internal/progress"
	"github.com/mjakub/bignum/internal/ui"
	"github.com/mjakub/bignum/internal/vec32"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Options sizes the suites started with "run".
	Options harness.Options
	// Timeout bounds each "run" command.
	Timeout time.Duration
	// Decimal prints results in base 10 instead of the word form.
	Decimal bool
}

// mulEngines are the multiplication engines "mul" can be switched between.
var mulEngines = map[string]func(a, b []vec32.Word) []vec32.Word{
	"convolution": vec32.Mul,
	"schoolbook":  vec32.MulOldFashioned,
	"lazy": func(a, b []vec32.Word) []vec32.Word {
		return vec32.Normalize(lazy.ProductGenerator{A: a, B: b}.Collect())
	},
}

var mulEngineOrder = []string{"convolution", "schoolbook", "lazy"}

// REPL is an interactive calculator over the word-vector kernel. Operands
// use the printed word form, e.g. "1'ffffffff", with an optional leading '-'.
type REPL struct {
	config   REPLConfig
	registry *harness.Registry
	engine   string
	in       io.Reader
	out      io.Writer
}

// NewREPL creates a REPL that runs suites from registry.
func NewREPL(registry *harness.Registry, config REPLConfig) *REPL {
	return &REPL{
		config:   config,
		registry: registry,
		engine:   mulEngineOrder[0],
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start reads and executes commands until "exit" or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"vec32> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %svec32 kernel calculator - interactive mode%s     %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, line := range [][2]string{
		{"add|sub|mul|div <a> <b>", "Evaluate with the kernel (div prints q and r)"},
		{"cmp <a> <b>", "Compare two values"},
		{"compare <a> <b>", "Multiply with every engine and check they agree"},
		{"engine <name>", "Select the mul engine (" + strings.Join(mulEngineOrder, ", ") + ")"},
		{"run <suite> [trials]", "Run one harness suite"},
		{"list", "List the harness suites"},
		{"dec", "Toggle decimal display"},
		{"status", "Display the session settings"},
		{"help", "Display this help"},
		{"exit / quit", "Leave interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %s%-24s%s - %s\n", ui.ColorYellow(), line[0], ui.ColorReset(), line[1])
	}
}

// processCommand executes one line. It returns false on exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "add", "sub", "mul", "div", "cmp", "+", "-", "*", "/":
		r.cmdArith(cmd, args)
	case "compare":
		r.cmdCompare(args)
	case "engine", "e":
		r.cmdEngine(args)
	case "run":
		r.cmdRun(args)
	case "list", "ls":
		r.cmdList()
	case "dec":
		r.config.Decimal = !r.config.Decimal
		fmt.Fprintf(r.out, "Decimal display: %s%v%s\n", ui.ColorGreen(), r.config.Decimal, ui.ColorReset())
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) operands(cmd string, args []string) (a, b integer.Int, ok bool) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s <a> <b>%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		return a, b, false
	}
	var err error
	if a, err = integer.ParseInt(args[0]); err == nil {
		b, err = integer.ParseInt(args[1])
	}
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid operand: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return a, b, false
	}
	return a, b, true
}

func (r *REPL) show(label string, x integer.Int) {
	text := x.String()
	if r.config.Decimal {
		text = x.ToBig().String()
	}
	fmt.Fprintf(r.out, "  %s = %s%s%s\n", label, ui.ColorGreen(), text, ui.ColorReset())
}

func (r *REPL) cmdArith(cmd string, args []string) {
	a, b, ok := r.operands(cmd, args)
	if !ok {
		return
	}
	switch cmd {
	case "add", "+":
		r.show("a + b", a.Add(b))
	case "sub", "-":
		r.show("a - b", a.Sub(b))
	case "mul", "*":
		mag := mulEngines[r.engine](a.Abs().Words(), b.Abs().Words())
		r.show("a * b", integer.IntFromNat(integer.NewNat(mag...), a.Sign()*b.Sign() < 0))
	case "div", "/":
		q, rem, err := a.QuoRem(b)
		if err != nil {
			fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		r.show("q", q)
		r.show("r", rem)
	case "cmp":
		fmt.Fprintf(r.out, "  cmp(a, b) = %s%d%s\n", ui.ColorGreen(), a.Cmp(b), ui.ColorReset())
	}
}

func (r *REPL) cmdCompare(args []string) {
	a, b, ok := r.operands("compare", args)
	if !ok {
		return
	}
	fmt.Fprintf(r.out, "\n%sProducts:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	var first []vec32.Word
	for i, name := range mulEngineOrder {
		start := time.Now()
		got := mulEngines[name](a.Abs().Words(), b.Abs().Words())
		elapsed := time.Since(start)
		if i == 0 {
			first = got
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if !vec32.Equal(got, first) || !vec32.IsCanonical(got) {
			status = ui.ColorRed() + "✗ INCONSISTENT " + vec32.Format(got) + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-12s%s: %s%10s%s %s\n",
			ui.ColorYellow(), name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(elapsed), ui.ColorReset(), status)
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) cmdEngine(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: engine <name>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	name := strings.ToLower(args[0])
	if _, ok := mulEngines[name]; !ok {
		fmt.Fprintf(r.out, "%sUnknown engine: %s%s (available: %s)\n", ui.ColorRed(), name, ui.ColorReset(), strings.Join(mulEngineOrder, ", "))
		return
	}
	r.engine = name
	fmt.Fprintf(r.out, "Multiplication engine: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

func (r *REPL) cmdRun(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: run <suite> [trials]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	s, err := r.registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	opts := r.config.Options
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(r.out, "%sInvalid trial count: %s%s\n", ui.ColorRed(), args[1], ui.ColorReset())
			return
		}
		opts.Trials = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	progressChan := make(chan progress.ProgressUpdate, 10)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	rep, err := s.Run(ctx, opts, progress.ChannelReporter(progressChan, 0))
	close(progressChan)
	wg.Wait()

	fmt.Fprintf(r.out, "\n%s%s%s: %d trials in %s, digest %s%s%s\n",
		ui.ColorBold(), s.Name(), ui.ColorReset(), rep.Trials, format.FormatExecutionDuration(rep.Elapsed),
		ui.ColorMagenta(), rep.DigestString(), ui.ColorReset())
	for _, mm := range rep.Failures {
		DisplayMismatch(mm, r.out)
	}
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
}

func (r *REPL) cmdList() {
	fmt.Fprintln(r.out)
	PrintSuiteList(r.registry, r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Engine:    %s%s%s\n", ui.ColorCyan(), r.engine, ui.ColorReset())
	fmt.Fprintf(r.out, "  Trials:    %s%d%s\n", ui.ColorCyan(), r.config.Options.Trials, ui.ColorReset())
	fmt.Fprintf(r.out, "  Max words: %s%d%s\n", ui.ColorCyan(), r.config.Options.MaxWords, ui.ColorReset())
	fmt.Fprintf(r.out, "  Seed:      %s%#x%s\n", ui.ColorCyan(), r.config.Options.Seed, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:   %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Decimal:   %s%v%s\n", ui.ColorCyan(), r.config.Decimal, ui.ColorReset())
	fmt.Fprintln(r.out)
}
