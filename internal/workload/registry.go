package workload

import (
	"fmt"
	"sort"

	"github.com/wesleyorama2/tempo/internal/bench"
)

// Workload is a named benchmarkable callable. Bind attaches the
// callable to a configured runner and executes the run, selecting the
// value-retaining or fenced invocation variant for the caller.
type Workload struct {
	Name        string
	Description string
	Bind        func(r *bench.Runner) bench.Result
}

var registry = map[string]Workload{}

func register(w Workload) {
	registry[w.Name] = w
}

// Lookup returns the workload registered under name.
func Lookup(name string) (Workload, error) {
	w, ok := registry[name]
	if !ok {
		return Workload{}, fmt.Errorf("unknown workload %q", name)
	}
	return w, nil
}

// All returns every registered workload, sorted by name.
func All() []Workload {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	workloads := make([]Workload, 0, len(names))
	for _, name := range names {
		workloads = append(workloads, registry[name])
	}
	return workloads
}
