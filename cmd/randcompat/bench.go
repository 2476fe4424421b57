package main

import (
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/dustin/go-humanize"

	"github.com/lox/randcompat/internal/bench"
)

type BenchCmd struct {
	Bytes  int    `help:"Buffer size per fill (default from config)"`
	Rounds int    `help:"Fills per case (default from config)"`
	Seed   *int64 `help:"Seed (default from config)"`
}

func (c *BenchCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	ctx := setupSignalHandler(logger)

	bc := bench.Config{
		Seed:   cfg.Seed,
		Bytes:  cfg.Bench.Bytes,
		Rounds: cfg.Bench.Rounds,
	}
	if c.Bytes > 0 {
		bc.Bytes = c.Bytes
	}
	if c.Rounds > 0 {
		bc.Rounds = c.Rounds
	}
	if c.Seed != nil {
		bc.Seed = *c.Seed
	}

	logger.Info("Running benchmark", "bytes", bc.Bytes, "rounds", bc.Rounds)
	results, err := bench.Run(ctx, quartz.NewReal(), bc)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, headerStyle.Render(row("case", "total", "elapsed", "throughput")))
	for _, r := range results {
		fmt.Fprintln(os.Stdout, row(r.Name,
			humanize.IBytes(uint64(r.Bytes)),
			r.Elapsed.Round(time.Microsecond).String(),
			humanize.IBytes(uint64(r.BytesPerSecond()))+"/s",
		))
	}
	return nil
}
