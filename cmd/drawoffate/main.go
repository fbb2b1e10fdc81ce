package main

import (
	"github.com/alecthomas/kong"
	"github.com/lox/drawoffate/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Play       PlayCmd          `cmd:"" default:"withargs" help:"Play Draw of Fate in the terminal"`
	Deal       DealCmd          `cmd:"" help:"Shuffle and deal cards without the interactive UI"`
	Uniformity UniformityCmd    `cmd:"" help:"Check the shuffle for bias with a chi-square test"`
	Presets    PresetsCmd       `cmd:"" help:"List preset card sets"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawoffate"),
		kong.Description("Shuffle a handful of cards, deal them face down and reveal them one by one"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
