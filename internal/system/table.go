package system

import (
	"fmt"
	"sort"

	"github.com/daedelecs/daedel/internal/core/ecs"
	"github.com/daedelecs/daedel/internal/world"
)

var table = map[string]ecs.System[*world.State]{
	"add_health":   AddHealth{},
	"sap_strength": SapStrength{},
	"print":        Print{},
	"print_world":  PrintWorld{},
}

// Lookup returns the system registered under name in the config.
func Lookup(name string) (ecs.System[*world.State], error) {
	s, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("unknown system %q (known: %v)", name, Names())
	}
	return s, nil
}

// Names lists the known system names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
