//go:build !randcompat_freestanding

package main

import (
	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

func init() {
	// Seeds are meaningless for the OS source.
	generators["os"] = generatorFactory{
		original: func(int64) rngcore.Source { return rngcore.OSRng{} },
		current:  func(int64) rngcorev2.Source { return rngcorev2.OSRng{} },
	}
}
