package workload

import (
	"crypto/sha256"
	"hash/fnv"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/wesleyorama2/tempo/internal/bench"
)

// Fixed inputs so every run of a workload does the same work.
var (
	hashInput = buildHashInput(1024)

	sortInput = buildSortInput(256)

	jsonInput = `{
		"user": {
			"id": 8421,
			"name": "Ada",
			"address": {"city": "Edinburgh", "postcode": "EH1 1RE"},
			"roles": ["admin", "operator"]
		},
		"session": {"token": "f3a9", "expires": "2026-01-01T00:00:00Z"}
	}`
)

func buildHashInput(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i * 31)
	}
	return buf
}

func buildSortInput(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = (i * 7919) % n
	}
	return vals
}

func init() {
	register(Workload{
		Name:        "fnv64",
		Description: "FNV-1a hash of a 1KiB buffer (returns a value)",
		Bind: func(r *bench.Runner) bench.Result {
			return bench.RunValue(r, func() uint64 {
				h := fnv.New64a()
				h.Write(hashInput)
				return h.Sum64()
			})
		},
	})

	register(Workload{
		Name:        "sha256",
		Description: "SHA-256 digest of a 1KiB buffer (returns a value)",
		Bind: func(r *bench.Runner) bench.Result {
			return bench.RunValue(r, func() [32]byte {
				return sha256.Sum256(hashInput)
			})
		},
	})

	register(Workload{
		Name:        "json-get",
		Description: "gjson path extraction from a small document (returns a value)",
		Bind: func(r *bench.Runner) bench.Result {
			return bench.RunValue(r, func() string {
				return gjson.Get(jsonInput, "user.address.city").String()
			})
		},
	})

	register(Workload{
		Name:        "sort",
		Description: "sort a copied 256-element int slice (void)",
		Bind: func(r *bench.Runner) bench.Result {
			return r.Run(func() {
				vals := make([]int, len(sortInput))
				copy(vals, sortInput)
				sort.Ints(vals)
			})
		},
	})

	register(Workload{
		Name:        "spin",
		Description: "tight arithmetic loop, 64 iterations (void)",
		Bind: func(r *bench.Runner) bench.Result {
			return r.Run(func() {
				x := uint64(0)
				for i := 0; i < 64; i++ {
					x = x*6364136223846793005 + 1442695040888963407
				}
				spinSink = x
			})
		},
	})
}

// spinSink keeps the spin loop observable without a return value.
var spinSink uint64
