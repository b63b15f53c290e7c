package harness

import (
	"fmt"
	"slices"
	"sync"

	"github.com/mjakub/bignum/internal/vec32"
)

// Registry maps suite names to suites. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	suites map[string]Suite
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{suites: make(map[string]Suite)}
}

// Register adds s. Names must be unique.
func (r *Registry) Register(s Suite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.suites[s.Name()]; exists {
		return fmt.Errorf("suite %q already registered", s.Name())
	}
	r.suites[s.Name()] = s
	return nil
}

// Get returns the suite registered under name.
func (r *Registry) Get(name string) (Suite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suites[name]
	if !ok {
		return nil, fmt.Errorf("unknown suite %q", name)
	}
	return s, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ListKind returns the sorted names of the suites of kind k.
func (r *Registry) ListKind(k Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for name, s := range r.suites {
		if s.Kind() == k {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

var (
	builtinMu       sync.Mutex
	extraBuiltins   []func() Suite
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// RegisterBuiltin adds a suite constructor to the default registry. It must
// be called from init, before DefaultRegistry is first used.
func RegisterBuiltin(newSuite func() Suite) {
	builtinMu.Lock()
	defer builtinMu.Unlock()
	extraBuiltins = append(extraBuiltins, newSuite)
}

// BuiltinSuites returns fresh instances of the suites compiled into every
// build.
func BuiltinSuites() []Suite {
	return []Suite{
		NewFuzzSuite("add_fuzz", "add, increment and add/sub round trips across engines", checkAdd),
		NewFuzzSuite("add_generator", "lazy sum and by-word generators against the eager kernel", checkAddGenerator),
		NewFuzzSuite("sub_fuzz", "symdiff, decrement and sub identities", checkSub),
		NewFuzzSuite("mul_fuzz", "convolution, schoolbook and lazy products agree", checkMul),
		NewFuzzSuite("mul_by_word_fuzz", "multiply by a word and fused sub-product", checkMulByWord),
		NewFuzzSuite("div_fuzz", "divide n = q*d + r and recover q and r", checkDiv),
		NewFuzzSuite("div_by_word_fuzz", "single-word division against the general divider", checkDivByWord),
		NewFuzzSuite("big_oracle", "every engine against math/big", checkBigOracle),
		&timingSuite{
			name: "mul_small_timing", description: "many products of small operands",
			size: smallSize, operands: natPair, op: vec32.Mul,
		},
		&timingSuite{
			name: "mul_large_timing", description: "a few products of very large operands",
			size: largeSize, operands: natPair, op: vec32.Mul,
		},
		&timingSuite{
			name: "div_timing", description: "divisions with multi-word divisors",
			size: smallSize, operands: divPair, op: quotient,
		},
	}
}

// DefaultRegistry returns the process-wide registry holding the built-in
// suites and any registered with RegisterBuiltin.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, s := range BuiltinSuites() {
			mustRegister(r, s)
		}
		builtinMu.Lock()
		for _, newSuite := range extraBuiltins {
			mustRegister(r, newSuite())
		}
		builtinMu.Unlock()
		defaultRegistry = r
	})
	return defaultRegistry
}

func mustRegister(r *Registry, s Suite) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}
