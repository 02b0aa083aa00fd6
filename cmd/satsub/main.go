// Command satsub removes the beta and gamma satellite contributions of a
// non-monochromatic excitation source from photoelectron spectra.
//
// Usage:
//
//	satsub [flags] [file ...]
//
// Without -batch it processes one file, shows the four curves and writes
// the satellite-subtracted spectrum to -out. With -batch every file is
// processed in order and the output name is asked for each one.
//
// Examples:
//
//	satsub VB_HeI.txt
//	satsub -offset 0.12 -view VB_HeI.txt
//	satsub -batch -dir results 'data/*.txt'
//	satsub -config helium.yaml -beta-frac 0.05 sample.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/PhilippHaizmann/SatSub/dsp/satsub"
	"github.com/PhilippHaizmann/SatSub/internal/app"
	"github.com/PhilippHaizmann/SatSub/internal/config"
	"github.com/PhilippHaizmann/SatSub/internal/logging"
	"github.com/PhilippHaizmann/SatSub/internal/plot"
	"github.com/PhilippHaizmann/SatSub/internal/prompt"
	"github.com/PhilippHaizmann/SatSub/internal/spectrumio"
)

type options struct {
	configPath string
	batch      bool
	out        string
	debug      bool
	cfg        config.Config
	args       []string
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, opts.args); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "cancelled")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	def := config.Default()
	var o options

	fs.StringVar(&o.configPath, "config", "", "YAML parameter file; flags override its values")
	offset := fs.Float64("offset", def.Offset, "global energy calibration offset added to every binding energy")
	betaOff := fs.Float64("beta-offset", def.Beta.Offset, "beta satellite energy offset")
	betaFrac := fs.Float64("beta-frac", def.Beta.Fraction, "beta satellite relative intensity")
	gammaOff := fs.Float64("gamma-offset", def.Gamma.Offset, "gamma satellite energy offset")
	gammaFrac := fs.Float64("gamma-frac", def.Gamma.Fraction, "gamma satellite relative intensity")
	extra := fs.Int("extra", def.ExtraPoints, "grid points added on top of the sample count")
	skip := fs.Int("skip", def.SkipRows, "header rows to skip in input files")
	delim := fs.String("delimiter", def.Delimiter, "field delimiter of input and output files")
	dir := fs.String("dir", def.OutputDir, "directory for batch outputs")
	plotPath := fs.String("plot", def.Plot.Path, "image file for the single-file plot")
	view := fs.Bool("view", def.Plot.View, "open the plot with the configured viewer; the run waits for the viewer command to exit")
	fs.BoolVar(&o.batch, "batch", false, "process every file and ask for each output name")
	fs.StringVar(&o.out, "out", "Test.csv", "output file of a single-file run")
	fs.BoolVar(&o.debug, "debug", false, "verbose development logging")
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: satsub [flags] [file ...]\n\n")
		fmt.Fprintf(w, "Subtracts He I beta and gamma satellites from photoelectron spectra.\n")
		fmt.Fprintf(w, "Without a file argument the file is asked for on the console.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  satsub VB_HeI.txt\n")
		fmt.Fprintf(w, "  satsub -batch -dir results 'data/*.txt'\n")
	}
	flagArgs, posArgs := splitFlagsAndPositionals(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return options{}, err
	}
	o.args = posArgs

	o.cfg = def
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return options{}, err
		}
		o.cfg = cfg
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "offset":
			o.cfg.Offset = *offset
		case "beta-offset":
			o.cfg.Beta.Offset = *betaOff
		case "beta-frac":
			o.cfg.Beta.Fraction = *betaFrac
		case "gamma-offset":
			o.cfg.Gamma.Offset = *gammaOff
		case "gamma-frac":
			o.cfg.Gamma.Fraction = *gammaFrac
		case "extra":
			o.cfg.ExtraPoints = *extra
		case "skip":
			o.cfg.SkipRows = *skip
		case "delimiter":
			o.cfg.Delimiter = *delim
		case "dir":
			o.cfg.OutputDir = *dir
		case "plot":
			o.cfg.Plot.Path = *plotPath
		case "view":
			o.cfg.Plot.View = *view
		}
	})
	if err := o.cfg.Validate(); err != nil {
		return options{}, err
	}
	return o, nil
}

func run(ctx context.Context, o options, args []string) error {
	zl, err := logging.New(o.debug)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()

	paths, err := expandPositionals(args)
	if err != nil {
		return err
	}

	eng, err := satsub.NewEngine(o.cfg.Params(), satsub.WithLogger(log.Named("engine")))
	if err != nil {
		return err
	}

	console := prompt.NewConsole(os.Stdin, os.Stdout)
	writer := spectrumio.Writer{Comma: o.cfg.Comma()}
	runner := &app.Runner{
		Engine: eng,
		Source: spectrumio.FileSource{
			Reader: spectrumio.Reader{SkipRows: o.cfg.SkipRows, Comma: o.cfg.Comma()},
			Picker: console,
		},
		Sink:  spectrumio.FileSink{Dir: o.cfg.OutputDir, Writer: writer},
		Namer: console,
		Log:   log,
	}

	if o.batch {
		if len(paths) == 0 {
			return errors.New("batch mode needs at least one input file")
		}
		jobs, err := runner.Batch(ctx, paths)
		log.Infow("batch finished", "written", len(jobs), "requested", len(paths))
		return err
	}

	if len(paths) > 1 {
		return fmt.Errorf("%d input files given without -batch", len(paths))
	}
	var path string
	if len(paths) == 1 {
		path = paths[0]
	}

	r := plot.NewRenderer(o.cfg.Plot.Path)
	r.View = o.cfg.Plot.View
	if len(o.cfg.Plot.Viewer) > 0 {
		r.Viewer = o.cfg.Plot.Viewer
	}
	runner.Renderer = r

	out, err := runner.Single(ctx, path)
	if err != nil {
		return err
	}
	if err := writer.WriteFile(o.out, out); err != nil {
		return err
	}
	log.Infow("written", "dest", o.out, "plot", o.cfg.Plot.Path)
	return nil
}

// splitFlagsAndPositionals separates flags from input paths so that flags
// may follow the files. Everything after "--" is positional.
func splitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			boolFlags[f.Name] = true
		}
	})

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !boolFlags[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// expandPositionals expands globs among the input paths. A pattern that
// matches nothing is an error.
func expandPositionals(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		if !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
