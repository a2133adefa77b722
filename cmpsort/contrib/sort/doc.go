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

// Package sort provides comparator-driven merge sort and quick sort.
//
// Every algorithm takes a cmpsort.Comparator, a three-way comparison
// returning -1, 0 or 1. The plain forms (MergeSorted, QuickSort, ...)
// order cmp.Ordered elements with cmpsort.Standard; the *Func forms take
// any comparator. Nothing in this package calls the standard library's
// sorting routines.
//
// # Algorithms
//
//   - MergeSorted / MergeSortedFunc: copying top-down merge sort. The input
//     is left untouched and a new sorted slice is returned. O(n log n).
//   - QuickSort / QuickSortFunc: in-place quick sort with a uniformly random
//     pivot and Lomuto partitioning. Expected O(n log n), worst case O(n²).
//     Not stable.
//   - QuickSorted / QuickSortedFunc: the same in-place sort, returning the
//     caller's slice (not a copy) so calls can be chained.
//   - Merge / MergeFunc: linear merge of two sorted slices.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-cmpsort/cmpsort"
//	    "github.com/ajroetker/go-cmpsort/cmpsort/contrib/sort"
//	)
//
//	func Process(data []int) []int {
//	    sort.QuickSort(data)                                     // ascending, in place
//	    return sort.MergeSortedFunc(data, cmpsort.Reverse[int]) // descending copy
//	}
//
// # Pivot Selection
//
// Pivots are drawn from the top-level math/rand/v2 generator. Setting the
// CMPSORT_SEED environment variable (see cmpsort.SeedEnv) seeds a fresh
// generator per call instead, and QuickSortRand accepts an explicit one.
package sort
