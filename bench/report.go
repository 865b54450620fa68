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

package bench

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report writes a human-readable summary of the timed strategies to w.
// Element counts are printed with thousands separators. When two or more
// results are given, each later result is also reported as a ratio against
// the first one.
func Report(w io.Writer, size int, results []Result) {
	if len(results) == 0 {
		return
	}

	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Performance (average over %d runs, %d elements):\n", results[0].Runs, size)
	for _, r := range results {
		p.Fprintf(w, "  %-18s %12.3f ns/pass\n", r.Name+":", float64(r.AvgPerPass.Nanoseconds()))
	}
	for _, r := range results[1:] {
		p.Fprintf(w, "Ratio (%s/%s): %.3f\n", r.Name, results[0].Name, Ratio(r, results[0]))
	}
}
