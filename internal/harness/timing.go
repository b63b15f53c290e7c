package harness

import (
	"context"
	"time"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/progress"
	"github.com/mjakub/bignum/internal/vec32"
)

const (
	// largeScale multiplies MaxWords for the large-operand timing suite.
	largeScale = 256
	// largeMaxIterations bounds the large-operand timing suite.
	largeMaxIterations = 10
	// largeTrialsPerIteration converts a trial budget into large iterations.
	largeTrialsPerIteration = 10000
)

// timingSuite times op over operands generated before the clock starts.
type timingSuite struct {
	name        string
	description string
	// size maps the run options to an iteration count and operand bound.
	size func(opts Options) (iterations, maxWords int)
	// operands draws one pair of inputs.
	operands func(src *Source, maxWords int) (a, b []vec32.Word)
	op       func(a, b []vec32.Word) []vec32.Word
}

func (s *timingSuite) Name() string        { return s.name }
func (s *timingSuite) Kind() Kind          { return KindTiming }
func (s *timingSuite) Description() string { return s.description }

func (s *timingSuite) Run(ctx context.Context, opts Options, report progress.Reporter) (Report, error) {
	iterations, maxWords := s.size(opts)
	src := NewSource(opts.Seed)
	as := make([][]vec32.Word, iterations)
	bs := make([][]vec32.Word, iterations)
	for i := range iterations {
		as[i], bs[i] = s.operands(src, maxWords)
	}

	rep := Report{Suite: s.name, Kind: KindTiming}
	t := newTrial(src, maxWords)
	tracker := progress.NewTracker(iterations, report)

	start := time.Now()
	for i := range iterations {
		if err := ctx.Err(); err != nil {
			rep.Elapsed = time.Since(start)
			rep.Ops, rep.Digest = t.ops, t.digest.Sum64()
			return rep, apperrors.SuiteError{Suite: s.name, Cause: err}
		}
		t.Record(s.op(as[i], bs[i]))
		rep.Trials++
		tracker.Step(i + 1)
	}
	rep.Elapsed = time.Since(start)
	tracker.Finish()

	rep.Ops, rep.Digest = t.ops, t.digest.Sum64()
	return rep, nil
}

func smallSize(opts Options) (int, int) { return opts.Trials, opts.MaxWords }

func largeSize(opts Options) (int, int) {
	iterations := min(max(opts.Trials/largeTrialsPerIteration, 1), largeMaxIterations)
	return iterations, max(opts.MaxWords, 1) * largeScale
}

func natPair(src *Source, maxWords int) (a, b []vec32.Word) {
	return src.Nat(maxWords), src.Nat(maxWords)
}

func divPair(src *Source, maxWords int) (n, d []vec32.Word) {
	q := src.Nat(maxWords)
	d = src.NonzeroNat(maxWords)
	n = vec32.Add(vec32.Mul(q, d), src.LessThan(d))
	return n, d
}

func quotient(n, d []vec32.Word) []vec32.Word {
	q, _ := vec32.Div(n, d)
	return q
}
