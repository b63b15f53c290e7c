package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mjakub/bignum/internal/harness"
)

func runREPL(t *testing.T, input string) string {
	t.Helper()
	noColor(t)
	withSpinner(t, &MockSpinner{})

	r := NewREPL(harness.DefaultRegistry(), REPLConfig{
		Options: harness.Options{Trials: 20, MaxWords: 4, Seed: harness.DefaultSeed},
		Timeout: time.Minute,
	})
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPLArithmetic(t *testing.T) {
	out := runREPL(t, strings.Join([]string{
		"add 1 ffffffff",
		"sub 1 2",
		"mul -2 3",
		"div 1'0 2",
		"div 7 0",
		"cmp 1'0 ffffffff",
		"dec",
		"+ 1'0 0",
		"exit",
	}, "\n")+"\n")

	for _, want := range []string{
		"a + b = 1'0",
		"a - b = -1",
		"a * b = -6",
		"q = 80000000",
		"r = 0",
		"division by zero",
		"cmp(a, b) = 1",
		"Decimal display: true",
		"a + b = 4294967296",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestREPLEngines(t *testing.T) {
	out := runREPL(t, "engine schoolbook\nmul ffffffff ffffffff\nengine karatsuba\ncompare ffffffff'ffffffff 1'0'1\nstatus\n")

	for _, want := range []string{"Multiplication engine: schoolbook", "a * b = fffffffe'1", "Unknown engine: karatsuba", "Engine:    schoolbook"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "✓") != len(mulEngineOrder) || strings.Contains(out, "INCONSISTENT") {
		t.Errorf("every engine should agree:\n%s", out)
	}
}

func TestREPLRunSuite(t *testing.T) {
	out := runREPL(t, "list\nrun add_fuzz 50\nrun nope\nrun add_fuzz zero\n")

	for _, want := range []string{"fuzz suites:", "add_fuzz: 50 trials", "unknown", "Invalid trial count: zero"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestREPLInputErrors(t *testing.T) {
	out := runREPL(t, "add 1\nmul xyz 1\nbogus\nhelp")

	for _, want := range []string{"Usage: add <a> <b>", "Invalid operand", "Unknown command: bogus", "Available commands:", "Goodbye!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}
