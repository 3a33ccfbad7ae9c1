package filter

import (
	"fmt"
	"sort"
)

// registry holds every built-in strategy keyed by name. Strategies are
// stateless, so sharing one instance across passes is safe.
var registry = map[string]Strategy{}

func init() {
	for _, s := range []Strategy{
		LocalMaximum{},
		Mean{},
		Median{},
		Minimum{},
		Maximum{},
		StdDev{},
		Range{},
	} {
		registry[s.Name()] = s
	}
}

// ByName looks up a built-in strategy by its registry name.
func ByName(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown filter strategy %q (available: %v)", name, Names())
	}
	return s, nil
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
