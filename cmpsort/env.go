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

import (
	"os"
	"strconv"
)

// SeedEnvVar names the environment variable that pins the pivot generator.
const SeedEnvVar = "CMPSORT_SEED"

// SeedEnv reports the seed set through the CMPSORT_SEED environment
// variable. When set, quick sorts that are not given their own generator
// seed a fresh one with this value, so pivot choices repeat from run to run.
// This is useful for testing and debugging.
//
// An unset, empty or unparsable value reports ok == false.
func SeedEnv() (seed uint64, ok bool) {
	val := os.Getenv(SeedEnvVar)
	if val == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}
