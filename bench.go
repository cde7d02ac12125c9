// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/keytree/avl"
)

// BenchOptions configures a random workload
type BenchOptions struct {
	Ops        int    // number of operations
	Span       int    // keys are drawn from [0, Span)
	Seed       uint64 // PRNG seed, runs with the same seed are identical
	CheckEvery int    // validate the tree every CheckEvery operations, 0 only at the end
	Progress   io.Writer
}

type benchReport struct {
	Ops      int
	Inserted int
	Removed  int
	Checks   int
	Stats    Stats
	Elapsed  time.Duration
}

func (r benchReport) String() string {
	return fmt.Sprintf("ops=%d inserted=%d removed=%d checks=%d %s elapsed=%s",
		r.Ops, r.Inserted, r.Removed, r.Checks, r.Stats, r.Elapsed.Round(time.Microsecond))
}

func newBenchBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌳 Balancing..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(w, "\n✅ Workload completed!\n")
		}),
	)
}

// runBench applies a seeded random mix of inserts (60%) and removals to an
// integer tree and validates it along the way
func runBench(opts BenchOptions) (benchReport, error) {
	if opts.Ops < 0 || opts.Span < 1 {
		return benchReport{}, fmt.Errorf("invalid workload: ops %d, span %d", opts.Ops, opts.Span)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = newBenchBar(opts.Ops, opts.Progress)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	tree := avl.New[int]()
	report := benchReport{Ops: opts.Ops}

	check := func(step int) error {
		report.Checks += 1
		if err := tree.Check(); err != nil {
			return fmt.Errorf("after operation %d: %w", step, err)
		}
		return nil
	}

	start := time.Now()
	for i := 1; i <= opts.Ops; i += 1 {
		key := rng.IntN(opts.Span)
		if rng.IntN(10) < 6 {
			if tree.Insert(key) {
				report.Inserted += 1
			}
		} else if tree.Remove(key) {
			report.Removed += 1
		}

		if opts.CheckEvery > 0 && i%opts.CheckEvery == 0 {
			if err := check(i); err != nil {
				return report, err
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	report.Elapsed = time.Since(start)
	if bar != nil {
		_ = bar.Finish()
	}

	if err := check(opts.Ops); err != nil {
		return report, err
	}

	report.Stats = Stats{
		Size:        tree.Size(),
		Height:      tree.Height(),
		Rotations:   tree.Rotations(),
		HeightBound: heightBound(tree.Size()),
	}
	if report.Stats.Height > report.Stats.HeightBound {
		return report, fmt.Errorf("height %d exceeds bound %d", report.Stats.Height, report.Stats.HeightBound)
	}
	return report, nil
}
