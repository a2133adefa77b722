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

import "github.com/ajroetker/go-cmpsort/cmpsort"

// partitionRand moves a randomly chosen element of data[start:stop+1] to
// data[start] and partitions the range around it.
// Returns the pivot's final index.
func partitionRand[T any](data []T, start, stop int, cmp cmpsort.Comparator[T], pick pivotFunc) int {
	r := pick(start, stop)
	data[start], data[r] = data[r], data[start]
	return partition(data, start, stop, cmp)
}

// partition performs Lomuto partitioning of data[start:stop+1] around
// data[start]. Returns index p where:
//   - data[start:p] <= pivot
//   - data[p] == pivot
//   - data[p+1:stop+1] > pivot
func partition[T any](data []T, start, stop int, cmp cmpsort.Comparator[T]) int {
	pivot := data[start]
	i := start + 1
	for j := start + 1; j <= stop; j++ {
		if cmp(data[j], pivot) <= 0 {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[start], data[i-1] = data[i-1], data[start]
	return i - 1
}
