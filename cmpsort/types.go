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

// Package cmpsort defines the three-way comparator contract shared by the
// sorting algorithms in cmpsort/contrib/sort, plus the standard comparators.
//
// A comparator reports how two elements relate:
//
//	cmp(a, b) == -1  // a sorts before b
//	cmp(a, b) ==  0  // a and b are equivalent
//	cmp(a, b) ==  1  // a sorts after b
//
// Basic usage:
//
//	import (
//	    "github.com/ajroetker/go-cmpsort/cmpsort"
//	    "github.com/ajroetker/go-cmpsort/cmpsort/contrib/sort"
//	)
//
//	desc := sort.MergeSortedFunc(data, cmpsort.Reverse[int])
//	sort.QuickSortFunc(data, cmpsort.LastDigit[int])
package cmpsort

// Comparator is a three-way comparison returning -1, 0 or 1.
//
// Comparators must describe a strict weak ordering (antisymmetric and
// transitive). Nothing checks this; a comparator that violates it yields
// an unspecified order.
type Comparator[T any] func(a, b T) int

// Signed is a constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	Signed | Unsigned
}
