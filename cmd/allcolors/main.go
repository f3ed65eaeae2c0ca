// allcolors draws a pixel map containing every color of a quantized RGB color space, once.
//
// The map is scaled to fit the output surface without blending: either the terminal, using
// half-block characters, or a Linux framebuffer device.
//
// Usage:
//
//	allcolors [--depth 12] [--method random] [--seed N] [--output term|fb] [--fb /dev/fb0]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/BeatGlow/allcolors"
)

type options struct {
	depth    allcolors.ColorDepth
	method   allcolors.Method
	seed     uint64
	output   string
	device   string
	cols     int
	rows     int
	caption  bool
	logLevel slog.Level
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, opts.logLevel)

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	m := allcolors.NewRand(opts.method, opts.depth, rng)
	logger.Debug("generated pixel map",
		"depth", m.Depth(),
		"method", m.Method(),
		"size", fmt.Sprintf("%dx%d", m.Width(), m.Height()),
		"colors", m.Profile().Colors(),
		"seed", opts.seed)

	s, err := openSurface(opts, stdout)
	if err != nil {
		return err
	}
	defer s.Close()
	logger.Debug("using surface", "surface", s)

	r, err := present(s, m, opts.caption)
	if err != nil {
		return err
	}
	logger.Info("drew pixel map", "map", m.String(), "rect", r)
	return nil
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	var (
		opts     = new(options)
		depth    string
		method   string
		logLevel string
	)

	flagSet := pflag.NewFlagSet("allcolors", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&depth, "depth", "d", "12", "color depth in bits: 24, 21, 18, 15, 12, 9 or 6")
	flagSet.StringVarP(&method, "method", "m", "none", "pixel order: none, random or smooth")
	flagSet.Uint64Var(&opts.seed, "seed", 0, "seed for the random order (0 picks a fresh seed)")
	flagSet.StringVarP(&opts.output, "output", "o", "term", "output surface: term or fb")
	flagSet.StringVar(&opts.device, "fb", "/dev/fb0", "framebuffer device")
	flagSet.IntVar(&opts.cols, "cols", 0, "terminal columns (default: detect)")
	flagSet.IntVar(&opts.rows, "rows", 0, "terminal rows (default: detect)")
	flagSet.BoolVar(&opts.caption, "caption", true, "label the map with its depth and method")
	flagSet.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: allcolors [flags]\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if flagSet.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}

	var err error
	if opts.depth, err = allcolors.ParseColorDepth(depth); err != nil {
		return nil, err
	}
	if opts.method, err = allcolors.ParseMethod(method); err != nil {
		return nil, err
	}
	if err = opts.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", logLevel)
	}
	if os.Getenv("ALLCOLORS_DEBUG") != "" {
		opts.logLevel = slog.LevelDebug
	}
	switch opts.output = strings.ToLower(opts.output); opts.output {
	case "term", "fb":
	default:
		return nil, fmt.Errorf("unsupported output %q", opts.output)
	}
	return opts, nil
}

// newLogger logs text to a terminal and JSON otherwise.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
