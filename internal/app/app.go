// Package app wires the subtraction engine to its data source, data sink,
// output naming prompt and plot renderer.
//
// Single-file runs render the result for inspection and return it. Batch
// runs process files strictly in the order given, prompt for each output
// name and persist; the first failure aborts the remaining files.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/PhilippHaizmann/SatSub/dsp/satsub"
	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
	"github.com/PhilippHaizmann/SatSub/internal/logging"
)

// Source produces a raw spectrum. An empty path lets the source choose one
// interactively; the resolved path is returned.
type Source interface {
	Fetch(ctx context.Context, path string) (spectrum.Spectrum, string, error)
}

// Sink persists a processed spectrum under name and returns where it went.
type Sink interface {
	Persist(ctx context.Context, s spectrum.Spectrum, name string) (string, error)
}

// Namer chooses the output name for the file at source.
type Namer interface {
	Name(ctx context.Context, source string) (string, error)
}

// Renderer shows a result for visual inspection.
type Renderer interface {
	Render(ctx context.Context, res satsub.Result) error
}

// Job is the per-file record of a batch run.
type Job struct {
	Source     string
	Calibrated spectrum.Spectrum
	OutputName string
}

// Runner runs the engine against its collaborators.
type Runner struct {
	Engine   *satsub.Engine
	Source   Source
	Sink     Sink
	Namer    Namer
	Renderer Renderer
	Log      *zap.SugaredLogger
}

// Single fetches one spectrum, subtracts the satellites, renders the result
// and returns the satellite-subtracted spectrum. A nil Renderer skips the
// inspection step.
func (r *Runner) Single(ctx context.Context, path string) (spectrum.Spectrum, error) {
	raw, src, err := r.Source.Fetch(ctx, path)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("fetch: %w", err)
	}

	res, err := r.Engine.Run(raw)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("%s: %w", src, err)
	}
	r.log().Infow("processed", "source", src, "samples", raw.Len(), "grid_points", res.Len())

	if r.Renderer != nil {
		if err := r.Renderer.Render(ctx, res); err != nil {
			return spectrum.Spectrum{}, fmt.Errorf("render: %w", err)
		}
	}
	return res.Spectrum(), nil
}

// Batch processes paths in order and returns the jobs that were persisted.
// Processing stops at the first error; jobs completed before it are
// returned together with the error.
func (r *Runner) Batch(ctx context.Context, paths []string) ([]Job, error) {
	if r.Sink == nil || r.Namer == nil {
		return nil, errors.New("app: batch run needs a sink and a namer")
	}

	done := make([]Job, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return done, fmt.Errorf("batch stopped before %s: %w", path, err)
		}

		job, err := r.process(ctx, path)
		if err != nil {
			return done, fmt.Errorf("file %d of %d: %w", i+1, len(paths), err)
		}
		done = append(done, job)
	}
	return done, nil
}

func (r *Runner) process(ctx context.Context, path string) (Job, error) {
	raw, src, err := r.Source.Fetch(ctx, path)
	if err != nil {
		return Job{}, fmt.Errorf("fetch %s: %w", path, err)
	}

	cal := r.Engine.Calibrate(raw)
	res, err := r.Engine.RunCalibrated(cal)
	if err != nil {
		return Job{}, fmt.Errorf("%s: %w", src, err)
	}

	name, err := r.Namer.Name(ctx, src)
	if err != nil {
		return Job{}, fmt.Errorf("name for %s: %w", src, err)
	}
	job := Job{Source: src, Calibrated: cal, OutputName: name}

	dest, err := r.Sink.Persist(ctx, res.Spectrum(), job.OutputName)
	if err != nil {
		return Job{}, fmt.Errorf("persist %s: %w", src, err)
	}
	r.log().Infow("written", "source", src, "dest", dest, "grid_points", res.Len())
	return job, nil
}

func (r *Runner) log() *zap.SugaredLogger {
	if r.Log == nil {
		return logging.Nop()
	}
	return r.Log
}
