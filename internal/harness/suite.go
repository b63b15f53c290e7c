package harness

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/progress"
	"github.com/mjakub/bignum/internal/vec32"
)

// Kind classifies a suite.
type Kind int

const (
	// KindFuzz suites compare randomized results against an oracle.
	KindFuzz Kind = iota
	// KindTiming suites measure a fixed workload.
	KindTiming
)

func (k Kind) String() string {
	switch k {
	case KindFuzz:
		return "fuzz"
	case KindTiming:
		return "timing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MaxFailures is the number of mismatches after which a fuzz suite stops.
const MaxFailures = 10

// cancelCheckInterval is how many trials run between context checks.
const cancelCheckInterval = 64

// Options sizes a suite run.
type Options struct {
	// Trials is the number of random trials (fuzz) or repetitions (timing).
	Trials int
	// MaxWords bounds the length of generated operands.
	MaxWords int
	// Seed initializes the suite's Source.
	Seed uint64
}

// Suite is a named, self-contained check of the kernel.
type Suite interface {
	Name() string
	Kind() Kind
	// Description is a one-line summary shown by --list.
	Description() string
	// Run executes the suite. A non-nil error is an apperrors.SuiteError
	// whose cause is the first mismatch or the context error.
	Run(ctx context.Context, opts Options, report progress.Reporter) (Report, error)
}

// Report summarizes a suite run.
type Report struct {
	Suite string
	Kind  Kind
	// Trials is the number of trials completed.
	Trials int
	// Ops is the number of kernel results checked or produced.
	Ops int
	// Failures holds up to MaxFailures mismatches.
	Failures []*apperrors.MismatchError
	// Digest is the xxhash of every result word, in order.
	Digest  uint64
	Elapsed time.Duration
}

// Passed reports whether the run completed without mismatches.
func (r Report) Passed() bool { return len(r.Failures) == 0 }

// DigestString returns the digest in the fixed-width form printed by the CLI.
func (r Report) DigestString() string { return fmt.Sprintf("%016x", r.Digest) }

// Trial is the per-trial context handed to a check: the operand source and
// a recorder for produced results.
type Trial struct {
	Src      *Source
	MaxWords int
	// Index is the zero-based trial number.
	Index int

	digest *xxhash.Digest
	ops    int
	buf    [4]byte
}

func newTrial(src *Source, maxWords int) *Trial {
	return &Trial{Src: src, MaxWords: maxWords, digest: xxhash.New()}
}

// Record folds v into the run digest and counts it as one operation. The
// length is hashed first so that concatenated vectors stay distinguishable.
func (t *Trial) Record(v []vec32.Word) {
	t.ops++
	binary.LittleEndian.PutUint32(t.buf[:], uint32(len(v)))
	_, _ = t.digest.Write(t.buf[:])
	for _, w := range v {
		binary.LittleEndian.PutUint32(t.buf[:], w)
		_, _ = t.digest.Write(t.buf[:])
	}
}

// Check records got and returns a MismatchError unless it is canonical and
// equal to want.
func (t *Trial) Check(op string, want, got []vec32.Word, inputs ...[]vec32.Word) *apperrors.MismatchError {
	t.Record(got)
	if vec32.IsCanonical(got) && vec32.Equal(want, got) {
		return nil
	}
	return t.Mismatch(op, vec32.Format(want), vec32.Format(got), inputs...)
}

// Mismatch builds a MismatchError for the current trial.
func (t *Trial) Mismatch(op, want, got string, inputs ...[]vec32.Word) *apperrors.MismatchError {
	printed := make([]string, len(inputs))
	for i, in := range inputs {
		printed[i] = vec32.Format(in)
	}
	return &apperrors.MismatchError{Op: op, Trial: t.Index, Inputs: printed, Want: want, Got: got}
}

// CheckFunc runs one randomized trial and returns the first mismatch, if any.
type CheckFunc func(t *Trial) *apperrors.MismatchError

// fuzzSuite runs a CheckFunc for the configured number of trials.
type fuzzSuite struct {
	name        string
	description string
	check       CheckFunc
}

// NewFuzzSuite wraps check as a Suite. The harness uses it for every built-in
// fuzz suite; build-tagged oracles use it too.
func NewFuzzSuite(name, description string, check CheckFunc) Suite {
	return &fuzzSuite{name: name, description: description, check: check}
}

func (s *fuzzSuite) Name() string        { return s.name }
func (s *fuzzSuite) Kind() Kind          { return KindFuzz }
func (s *fuzzSuite) Description() string { return s.description }

func (s *fuzzSuite) Run(ctx context.Context, opts Options, report progress.Reporter) (Report, error) {
	start := time.Now()
	rep := Report{Suite: s.name, Kind: KindFuzz}
	t := newTrial(NewSource(opts.Seed), opts.MaxWords)
	tracker := progress.NewTracker(opts.Trials, report)

	finish := func() {
		rep.Ops = t.ops
		rep.Digest = t.digest.Sum64()
		rep.Elapsed = time.Since(start)
	}

	for i := range opts.Trials {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				finish()
				return rep, apperrors.SuiteError{Suite: s.name, Cause: err}
			}
		}
		t.Index = i
		if mm := s.check(t); mm != nil {
			rep.Failures = append(rep.Failures, mm)
			if len(rep.Failures) >= MaxFailures {
				rep.Trials++
				break
			}
		}
		rep.Trials++
		tracker.Step(i + 1)
	}
	tracker.Finish()
	finish()

	if len(rep.Failures) > 0 {
		return rep, apperrors.SuiteError{Suite: s.name, Cause: rep.Failures[0]}
	}
	return rep, nil
}
