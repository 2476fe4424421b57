// Package bench measures fill throughput of generators with and without an
// adapter in front of them.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/randcompat"
	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

// ctxCheckInterval is how many rounds run between cancellation checks.
const ctxCheckInterval = 1024

// Config controls a benchmark run.
type Config struct {
	Seed   int64
	Bytes  int
	Rounds int
}

// Result is the outcome of one case.
type Result struct {
	Name    string
	Bytes   int64
	Elapsed time.Duration
}

// BytesPerSecond returns throughput, or zero if no time was observed.
func (r Result) BytesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Elapsed.Seconds()
}

type benchCase struct {
	name string
	fill func([]byte)
}

func cases(seed int64) []benchCase {
	return []benchCase{
		{"original", rngcore.NewPCG32(seed).FillBytes},
		{"original+forward", randcompat.NewForward(rngcore.NewPCG32(seed)).Fill},
		{"current", rngcorev2.NewPCG(seed).Fill},
		{"current+backward", randcompat.NewBackward(rngcorev2.NewPCG(seed)).FillBytes},
	}
}

// Run executes every case for cfg.Rounds fills of cfg.Bytes bytes, timing
// each with clock.
func Run(ctx context.Context, clock quartz.Clock, cfg Config) ([]Result, error) {
	if cfg.Bytes <= 0 || cfg.Rounds <= 0 {
		return nil, fmt.Errorf("bytes and rounds must be positive (bytes=%d rounds=%d)", cfg.Bytes, cfg.Rounds)
	}

	buf := make([]byte, cfg.Bytes)
	var results []Result
	for _, c := range cases(cfg.Seed) {
		start := clock.Now()
		for round := range cfg.Rounds {
			if round%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return results, fmt.Errorf("benchmark %s interrupted: %w", c.name, err)
				}
			}
			c.fill(buf)
		}
		results = append(results, Result{
			Name:    c.name,
			Bytes:   int64(cfg.Bytes) * int64(cfg.Rounds),
			Elapsed: clock.Since(start),
		})
	}
	return results, nil
}
