package orchestration

import (
	"strings"

	"github.com/mjakub/bignum/internal/harness"
)

// SuiteLister is the part of harness.Registry that selection needs.
type SuiteLister interface {
	Get(name string) (harness.Suite, error)
	List() []string
}

// SelectSuites determines which suites should be executed for a --suite
// value. "all", "fuzz" and "timing" select by kind in alphabetical order;
// anything else is a comma-separated list of names, kept in the order given
// with duplicates removed.
//
// Parameters:
//   - selection: The --suite value.
//   - registry: Where suites are looked up.
//
// Returns:
//   - []harness.Suite: The suites to execute.
//   - error: The lookup error for the first unknown name.
func SelectSuites(selection string, registry SuiteLister) ([]harness.Suite, error) {
	var names []string
	switch selection {
	case "all", "fuzz", "timing":
		names = registry.List() // List() returns sorted names
	default:
		for name := range strings.SplitSeq(selection, ",") {
			names = append(names, strings.TrimSpace(name))
		}
	}

	seen := make(map[string]bool, len(names))
	suites := make([]harness.Suite, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		s, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		if (selection == "fuzz" && s.Kind() != harness.KindFuzz) ||
			(selection == "timing" && s.Kind() != harness.KindTiming) {
			continue
		}
		suites = append(suites, s)
	}
	return suites, nil
}
