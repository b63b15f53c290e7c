package orchestration

import (
	"testing"

	"github.com/mjakub/bignum/internal/harness"
)

// TestSelectSuites tests the SelectSuites function.
func TestSelectSuites(t *testing.T) {
	t.Parallel()
	registry := harness.DefaultRegistry()

	t.Run("Single suite returns one suite", func(t *testing.T) {
		t.Parallel()
		suites, err := SelectSuites("mul_fuzz", registry)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(suites) != 1 || suites[0].Name() != "mul_fuzz" {
			t.Errorf("Expected [mul_fuzz], got %d suites", len(suites))
		}
	})

	t.Run("All returns every suite", func(t *testing.T) {
		t.Parallel()
		suites, err := SelectSuites("all", registry)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(suites) != len(registry.List()) {
			t.Errorf("Expected %d suites for 'all', got %d", len(registry.List()), len(suites))
		}
	})

	t.Run("Kinds filter", func(t *testing.T) {
		t.Parallel()
		for _, tc := range []struct {
			selection string
			kind      harness.Kind
		}{{"fuzz", harness.KindFuzz}, {"timing", harness.KindTiming}} {
			suites, err := SelectSuites(tc.selection, registry)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(suites) == 0 {
				t.Errorf("%s selected nothing", tc.selection)
			}
			for _, s := range suites {
				if s.Kind() != tc.kind {
					t.Errorf("%s selected %s of kind %s", tc.selection, s.Name(), s.Kind())
				}
			}
		}
	})

	t.Run("List keeps order and drops duplicates", func(t *testing.T) {
		t.Parallel()
		suites, err := SelectSuites("div_fuzz, add_fuzz,div_fuzz", registry)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(suites) != 2 || suites[0].Name() != "div_fuzz" || suites[1].Name() != "add_fuzz" {
			t.Errorf("unexpected selection: %v", suites)
		}
	})

	t.Run("Unknown suite", func(t *testing.T) {
		t.Parallel()
		if _, err := SelectSuites("pow_fuzz", registry); err == nil {
			t.Error("expected an error for an unknown suite")
		}
	})
}
