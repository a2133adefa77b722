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
	"slices"

	"github.com/ajroetker/go-cmpsort/cmpsort"
)

// Merge merges two ascending slices into a new ascending slice.
func Merge[T cmp.Ordered](xs, ys []T) []T {
	return merge(xs, ys, cmpsort.Standard[T])
}

// MergeFunc merges xs and ys, both sorted ascending under cmp, into a newly
// allocated slice of length len(xs)+len(ys). It runs in linear time.
//
// When the heads of xs and ys compare equal, both are emitted, the xs
// element first. The result never aliases xs or ys.
func MergeFunc[T any](xs, ys []T, cmp cmpsort.Comparator[T]) []T {
	checkComparator(cmp)
	return merge(xs, ys, cmp)
}

func merge[T any](xs, ys []T, cmp cmpsort.Comparator[T]) []T {
	out := make([]T, 0, len(xs)+len(ys))
	x, y := 0, 0
	for x < len(xs) && y < len(ys) {
		c := cmp(xs[x], ys[y])
		switch {
		case c == 0:
			out = append(out, xs[x], ys[y])
			x++
			y++
		case c > 0:
			out = append(out, ys[y])
			y++
		default:
			out = append(out, xs[x])
			x++
		}
	}
	// At most one side has elements left.
	out = append(out, xs[x:]...)
	return append(out, ys[y:]...)
}

// MergeSorted returns a copy of xs sorted in ascending order.
func MergeSorted[T cmp.Ordered](xs []T) []T {
	return mergeSorted(xs, cmpsort.Standard[T])
}

// MergeSortedFunc returns a copy of xs sorted ascending under cmp using
// top-down merge sort. xs itself is not modified.
func MergeSortedFunc[T any](xs []T, cmp cmpsort.Comparator[T]) []T {
	checkComparator(cmp)
	return mergeSorted(xs, cmp)
}

func mergeSorted[T any](xs []T, cmp cmpsort.Comparator[T]) []T {
	if len(xs) <= 1 {
		return slices.Clone(xs)
	}
	mid := len(xs) / 2
	left := mergeSorted(xs[:mid], cmp)
	right := mergeSorted(xs[mid:], cmp)
	return merge(left, right, cmp)
}
