package satsub

import (
	"go.uber.org/zap"

	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
)

// Engine applies one parameter set to any number of spectra.
type Engine struct {
	params Params
	log    *zap.SugaredLogger
}

// Option mutates an Engine during construction.
type Option func(*Engine)

// WithLogger sets the logger used for per-run debug output.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine validates p and returns an engine bound to it.
func NewEngine(p Params, opts ...Option) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{params: p, log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Params returns the engine's parameters.
func (e *Engine) Params() Params { return e.params }

// Run calibrates s by the global offset and subtracts the satellites.
func (e *Engine) Run(s spectrum.Spectrum) (Result, error) {
	return e.RunCalibrated(e.Calibrate(s))
}

// Calibrate applies the engine's global offset to s.
func (e *Engine) Calibrate(s spectrum.Spectrum) spectrum.Spectrum {
	return spectrum.Calibrate(s, e.params.GlobalOffset)
}

// RunCalibrated subtracts the satellites from an already calibrated spectrum.
func (e *Engine) RunCalibrated(cal spectrum.Spectrum) (Result, error) {
	res, err := subtract(cal, e.params)
	if err != nil {
		return Result{}, err
	}

	e.log.Debugw("satellites subtracted",
		"samples", cal.Len(),
		"grid_points", res.Len(),
		"grid_start", res.Grid[0],
		"grid_stop", res.Grid[res.Len()-1],
		"beta_offset", e.params.Beta.Offset,
		"gamma_offset", e.params.Gamma.Offset,
	)
	return res, nil
}
