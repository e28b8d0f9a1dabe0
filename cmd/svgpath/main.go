// Command svgpath rewrites and measures SVG path data.
//
// Usage:
//
//	svgpath [flags] [path-data]
//
// The path data is read from standard input if it isn't given as an
// argument. By default the parsed path is printed back in compact form.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/svgpath"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type report struct {
	Path   string       `yaml:"path"`
	BBox   *bboxReport  `yaml:"bbox,omitempty"`
	Length *float64     `yaml:"length,omitempty"`
	At     *pointReport `yaml:"at,omitempty"`
}

type bboxReport struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type pointReport struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("svgpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		abs        = fs.Bool("abs", false, "convert relative segments to absolute")
		unshort    = fs.Bool("unshort", false, "expand smooth curves (S, T) to full curves")
		unarc      = fs.Bool("unarc", false, "convert arcs to cubic Béziers")
		normalize  = fs.Bool("normalize", false, "apply all conversions and turn H and V into L")
		bbox       = fs.Bool("bbox", false, "print the bounding box")
		length     = fs.Bool("length", false, "print the total length")
		precision  = fs.Int("precision", -1, "round to `n` decimal digits (negative: don't round)")
		configFile = fs.String("config", "", "read settings from TOML `file`")
		output     = fs.String("output", "text", "output format: text or yaml")
		verbose    = fs.Bool("v", false, "log debug information to stderr")
	)
	at := math.NaN()
	fs.Func("at", "print the point at `length` along the path", func(s string) error {
		_, err := fmt.Sscan(s, &at)
		return err
	})
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: svgpath [flags] [path-data]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cfg := defaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "svgpath: %v\n", err)
			return exitUsage
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "precision":
			cfg.Precision = *precision
		case "normalize":
			cfg.Normalize = *normalize
		case "output":
			cfg.Output = *output
		}
	})
	if cfg.Output != "text" && cfg.Output != "yaml" {
		fmt.Fprintf(stderr, "svgpath: unknown output format %q\n", cfg.Output)
		return exitUsage
	}

	if *verbose {
		svgpath.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer svgpath.SetLogger(nil)
	}

	var d string
	if fs.NArg() == 1 {
		d = fs.Arg(0)
	} else {
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "svgpath: reading input: %v\n", err)
			return exitError
		}
		d = strings.TrimSpace(string(b))
	}

	segs, err := svgpath.ParseSegments(d)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if cfg.Normalize {
		segs = segs.Normalize()
	} else {
		if *abs {
			segs = segs.Absolute()
		}
		if *unshort {
			segs = segs.ExpandShorthand()
		}
		if *unarc {
			segs = segs.ExpandArcs()
		}
	}

	rep := report{}
	if *bbox {
		b := segs.BBox()
		rep.BBox = &bboxReport{b.Left, b.Top, b.Right, b.Bottom, b.Width, b.Height}
	}
	if *length || !math.IsNaN(at) {
		lt := svgpath.NewLengthTable(segs)
		if *length {
			l := lt.TotalLength()
			rep.Length = &l
		}
		if !math.IsNaN(at) {
			pt := lt.PointAtLength(at)
			rep.At = &pointReport{pt.X, pt.Y}
		}
	}
	if cfg.Precision >= 0 {
		segs = segs.Round(cfg.Precision)
	}
	rep.Path = segs.String()

	if err := writeReport(stdout, rep, cfg.Output); err != nil {
		fmt.Fprintf(stderr, "svgpath: writing output: %v\n", err)
		return exitError
	}
	return exitOK
}

func writeReport(w io.Writer, rep report, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}

	if _, err := fmt.Fprintln(w, rep.Path); err != nil {
		return err
	}
	if b := rep.BBox; b != nil {
		if _, err := fmt.Fprintf(w, "bbox: %g %g %g %g (%gx%g)\n", b.Left, b.Top, b.Right, b.Bottom, b.Width, b.Height); err != nil {
			return err
		}
	}
	if rep.Length != nil {
		if _, err := fmt.Fprintf(w, "length: %g\n", *rep.Length); err != nil {
			return err
		}
	}
	if rep.At != nil {
		if _, err := fmt.Fprintf(w, "at: %g %g\n", rep.At.X, rep.At.Y); err != nil {
			return err
		}
	}
	return nil
}
