package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lox/randcompat/internal/verify"
)

// maxLoggedMismatches caps how many mismatches are logged individually.
const maxLoggedMismatches = 10

type VerifyCmd struct {
	Seeds   int    `help:"Number of seeds to check (default from config)"`
	Ops     int    `help:"Operations per seed (default from config)"`
	Workers int    `help:"Parallel workers (default from config)"`
	Start   *int64 `help:"First seed (default: config seed)"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	ctx := setupSignalHandler(logger)

	vc := verify.Config{
		StartSeed: cfg.Seed,
		Seeds:     cfg.Verify.Seeds,
		Ops:       cfg.Verify.Ops,
		Workers:   cfg.Verify.Workers,
	}
	if c.Seeds > 0 {
		vc.Seeds = c.Seeds
	}
	if c.Ops > 0 {
		vc.Ops = c.Ops
	}
	if c.Workers > 0 {
		vc.Workers = c.Workers
	}
	if c.Start != nil {
		vc.StartSeed = *c.Start
	}

	logger.Info("Verifying adapters", "seeds", vc.Seeds, "ops", vc.Ops, "workers", vc.Workers, "start", vc.StartSeed)
	report, err := verify.Run(ctx, vc)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, headerStyle.Render(row("direction", "checked", "failed", "status")))
	for _, d := range verify.Directions {
		status := passStyle.Render("ok")
		if report.Failed[d] > 0 {
			status = failStyle.Render("FAIL")
		}
		fmt.Fprintln(os.Stdout, row(string(d),
			strconv.Itoa(report.Checked[d]),
			strconv.Itoa(report.Failed[d]),
			status,
		))
	}

	for i, m := range report.Mismatches {
		if i == maxLoggedMismatches {
			logger.Warn("More mismatches omitted", "remaining", len(report.Mismatches)-i)
			break
		}
		logger.Error("Adapter diverged", "direction", m.Direction, "seed", m.Seed, "op", m.Op, "call", m.Call, "want", m.Want, "got", m.Got)
	}

	if !report.OK() {
		return fmt.Errorf("verification failed: %d mismatches", len(report.Mismatches))
	}
	return nil
}
