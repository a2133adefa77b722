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

// QuickSort sorts data in place in ascending order.
func QuickSort[T cmp.Ordered](data []T) {
	QuickSortFunc(data, cmpsort.Standard[T])
}

// QuickSortFunc sorts data in place, ascending under cmp, using randomized
// quick sort with Lomuto partitioning. The sort is not stable.
func QuickSortFunc[T any](data []T, cmp cmpsort.Comparator[T]) {
	checkComparator(cmp)
	if len(data) <= 1 {
		return
	}
	quickSort(data, 0, len(data)-1, cmp, defaultPivot())
}

// QuickSorted sorts data in place in ascending order and returns it.
func QuickSorted[T cmp.Ordered](data []T) []T {
	return QuickSortedFunc(data, cmpsort.Standard[T])
}

// QuickSortedFunc sorts data in place like QuickSortFunc and returns data
// itself. No copy is made: the result shares data's backing array.
func QuickSortedFunc[T any](data []T, cmp cmpsort.Comparator[T]) []T {
	QuickSortFunc(data, cmp)
	return data
}

// QuickSortRand is QuickSortFunc with pivots drawn from r, so that the
// sequence of comparisons and swaps is reproducible for a given seed.
// A nil r behaves like QuickSortFunc.
func QuickSortRand[T any](data []T, cmp cmpsort.Comparator[T], r *rand.Rand) {
	checkComparator(cmp)
	if len(data) <= 1 {
		return
	}
	pick := defaultPivot()
	if r != nil {
		pick = pivotFromRand(r)
	}
	quickSort(data, 0, len(data)-1, cmp, pick)
}

// quickSort sorts the inclusive range data[start:stop+1].
//
// It recurses into the smaller partition and loops on the larger one,
// which keeps the stack O(log n) deep even for unlucky pivots.
func quickSort[T any](data []T, start, stop int, cmp cmpsort.Comparator[T], pick pivotFunc) {
	for start < stop {
		p := partitionRand(data, start, stop, cmp, pick)
		if p-start < stop-p {
			quickSort(data, start, p-1, cmp, pick)
			start = p + 1
		} else {
			quickSort(data, p+1, stop, cmp, pick)
			stop = p - 1
		}
	}
}
