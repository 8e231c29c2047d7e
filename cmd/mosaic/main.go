// Command mosaic turns images into mosaics from the command line.
//
//	mosaic create photo.jpg --shape star --out star.png
//	mosaic grid photo.jpg --sample-size 40
//	mosaic overlay photo.jpg --out grid.png
//
// Defaults for the sampling and shape flags can also be set with MOSAIC_*
// environment variables; see --help.
package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
)

// Version is set by ldflags during build.
var Version = "dev"

type cli struct {
	Verbose bool             `help:"Enable debug logging" short:"v"`
	Version kong.VersionFlag `help:"Print version information and quit"`

	Create  createCmd  `cmd:"" help:"Build a mosaic from an image and save it as PNG"`
	Grid    gridCmd    `cmd:"" help:"Print the sampled colors as rows of hex values"`
	Overlay overlayCmd `cmd:"" help:"Save the source image with the sampling grid drawn on it"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	logger *slog.Logger
	out    io.Writer
	now    func() time.Time
}

func newParser(c *cli) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("mosaic"),
		kong.Description("Turn images into mosaics of squares, circles or stars."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)
}

func main() {
	var c cli
	parser, err := newParser(&c)
	if err != nil {
		slog.Error("invalid command definition", "error", err)
		os.Exit(2)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	err = kctx.Run(&runContext{
		logger: logger,
		out:    os.Stdout,
		now:    time.Now,
	})
	if err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
