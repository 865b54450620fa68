// Copyright 2026 go-alignbench Authors
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

// Command alignbench measures the cost of load alignment for vectorized
// float64 summation. It fills a 32-byte aligned buffer with random data,
// copies it to a deliberately misaligned address, verifies that the scalar,
// aligned-load and unaligned-load strategies agree, then times the two vector
// strategies and reports the unaligned/aligned ratio.
//
// Usage:
//
//	alignbench [-size N] [-runs N]
//
// Set ALIGNBENCH_NO_SIMD to force the pure Go fallback, or build with
// -tags noasm.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/ajroetker/go-alignbench/bench"
	"github.com/ajroetker/go-alignbench/buffer"
	"github.com/ajroetker/go-alignbench/vec"
)

const (
	defaultSize = 1_000_000
	defaultRuns = 1000

	// misalignOffset is how many bytes past a 32-byte boundary the
	// misaligned buffer starts. 4 bytes means every float64 straddles its
	// natural 8-byte alignment.
	misalignOffset = 4

	fillSeed = 1
)

func main() {
	size := flag.Int("size", defaultSize, "number of float64 elements to sum")
	runs := flag.Int("runs", defaultRuns, "timed passes per strategy")
	flag.Parse()

	if flag.NFlag() == 0 {
		fmt.Printf("No -size or -runs provided, using defaults: size=%d, runs=%d\n", defaultSize, defaultRuns)
	}
	if *size <= 0 || *runs <= 0 {
		fmt.Fprintln(os.Stderr, "alignbench: -size and -runs must be positive")
		flag.Usage()
		os.Exit(2)
	}

	alignedData := buffer.Float64s(*size)
	if alignedData == nil {
		fatalf("aligned buffer allocation failed")
	}
	if !buffer.Aligned(alignedData, buffer.AVXAlignment) {
		fatalf("aligned buffer is not %d-byte aligned", buffer.AVXAlignment)
	}
	buffer.FillRandom(alignedData, fillSeed)

	misalignedData := buffer.Float64sMisaligned(*size, misalignOffset)
	if misalignedData == nil {
		fatalf("misaligned buffer allocation failed")
	}
	copy(misalignedData, alignedData)

	fmt.Printf("Running with: size=%d, runs=%d (dispatch: %s)\n\n", *size, *runs, vec.CurrentName())

	scalarSum := vec.SumScalar(alignedData)
	alignedSum := vec.SumAlignedLoads(alignedData)
	unalignedSum := vec.SumUnalignedLoads(misalignedData)

	fmt.Printf("Scalar sum:    %.3f\n", scalarSum)
	fmt.Printf("Aligned sum:   %.3f\n", alignedSum)
	fmt.Printf("Unaligned sum: %.3f\n\n", unalignedSum)

	if math.IsNaN(unalignedSum) {
		fatalf("unaligned sum is NaN")
	}

	results := []bench.Result{
		bench.Run(bench.Strategy{Name: "aligned loads", Fn: vec.SumAlignedLoads}, alignedData, *runs),
		bench.Run(bench.Strategy{Name: "unaligned loads", Fn: vec.SumUnalignedLoads}, misalignedData, *runs),
	}
	bench.Report(os.Stdout, *size, results)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "alignbench: "+format+"\n", args...)
	os.Exit(1)
}
