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

package cmpsort

import "cmp"

// Standard orders values from lowest to highest.
//
// Unlike cmp.Compare, Standard treats a NaN as equivalent to every value,
// since neither a < b nor a > b holds.
func Standard[T cmp.Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if b < a {
		return 1
	}
	return 0
}

// Reverse orders values from highest to lowest. It is the exact inverse
// of Standard.
func Reverse[T cmp.Ordered](a, b T) int {
	if a < b {
		return 1
	}
	if b < a {
		return -1
	}
	return 0
}

// LastDigit orders integers by their last decimal digit only.
//
// The digit is taken with floor-mod semantics, so it is always in [0, 9]:
// the last digit of -13 is 7, not -3.
func LastDigit[T Integers](a, b T) int {
	return Standard(lastDigit(a), lastDigit(b))
}

func lastDigit[T Integers](v T) T {
	// v%10 is in (-10, 10); adding 10 keeps unsigned types from wrapping.
	return (v%10 + 10) % 10
}

// Invert returns a comparator that orders elements opposite to c.
func Invert[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
