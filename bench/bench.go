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

// Package bench times summation strategies over a shared input buffer and
// formats the results. It is a single-pass wall-clock harness, not a
// statistical one; for variance analysis use `go test -bench` on the vec
// package instead.
package bench

import "time"

// Strategy is a named summation implementation under measurement.
type Strategy struct {
	Name string
	Fn   func([]float64) float64
}

// Result holds the outcome of timing one strategy.
type Result struct {
	Name       string
	Sum        float64
	Runs       int
	AvgPerPass time.Duration
}

// Run times runs invocations of s.Fn over data and returns the averaged
// result. One untimed warmup pass runs first so page faults and cache
// population stay out of the measurement. runs below 1 is treated as 1.
func Run(s Strategy, data []float64, runs int) Result {
	if runs < 1 {
		runs = 1
	}

	sum := s.Fn(data) // warmup

	start := time.Now()
	for i := 0; i < runs; i++ {
		sum = s.Fn(data)
	}
	elapsed := time.Since(start)

	return Result{
		Name:       s.Name,
		Sum:        sum,
		Runs:       runs,
		AvgPerPass: elapsed / time.Duration(runs),
	}
}

// Ratio returns a's average pass time divided by b's. Returns 0 when b's
// time is not positive.
func Ratio(a, b Result) float64 {
	if b.AvgPerPass <= 0 {
		return 0
	}
	return float64(a.AvgPerPass) / float64(b.AvgPerPass)
}
