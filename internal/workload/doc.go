// Package workload provides the built-in callables the tempo CLI can
// benchmark. Each workload knows whether it produces a value and binds
// itself to a runner through the matching barrier variant.
package workload
