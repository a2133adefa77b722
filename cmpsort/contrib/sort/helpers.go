// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"cmp"
	"math/rand/v2"

	"github.com/ajroetker/go-cmpsort/cmpsort"
)

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, cmpsort.Standard[T])
}

// IsSortedFunc reports whether data is non-decreasing under cmp, that is
// cmp(data[i], data[i+1]) <= 0 for every adjacent pair.
func IsSortedFunc[T any](data []T, cmp cmpsort.Comparator[T]) bool {
	checkComparator(cmp)
	for i := 1; i < len(data); i++ {
		if cmp(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}

func checkComparator[T any](cmp cmpsort.Comparator[T]) {
	if cmp == nil {
		panic("sort: nil comparator")
	}
}

// pivotFunc returns a uniformly random index in [lo, hi].
type pivotFunc func(lo, hi int) int

func randomPivot(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

func pivotFromRand(r *rand.Rand) pivotFunc {
	return func(lo, hi int) int {
		return lo + r.IntN(hi-lo+1)
	}
}

// defaultPivot returns the pivot source for one sort call: the shared
// top-level generator, or a freshly seeded one when CMPSORT_SEED is set.
func defaultPivot() pivotFunc {
	if seed, ok := cmpsort.SeedEnv(); ok {
		return pivotFromRand(rand.New(rand.NewPCG(seed, seed)))
	}
	return randomPivot
}
