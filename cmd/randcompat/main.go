package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Sample  SampleCmd        `cmd:"" help:"Draw values from a generator through an adapter"`
	Verify  VerifyCmd        `cmd:"" help:"Check that adapters are transparent across many seeds"`
	Bench   BenchCmd         `cmd:"" help:"Measure fill throughput with and without adapters"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("randcompat"),
		kong.Description("Adapt generators between the original and current rngcore interfaces"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
