// Package tonecore implements the cinematic HDR tone-mapping and
// color-pipeline engine: an Engine that applies the PPR/RLOG tone
// curves, highlight-detail USM, OKLab saturation, and two-stage gamut
// processing to a sequence of frames, per the External Interfaces
// contract.
package tonecore

import (
	"github.com/lumacurve/tonecore/config"
	"github.com/lumacurve/tonecore/faults"
	"github.com/lumacurve/tonecore/frame"
	"github.com/lumacurve/tonecore/logging"
	"github.com/lumacurve/tonecore/pipeline"
)

// Exit codes for host tools invoking the core, per spec.md §6.
const (
	ExitSuccess   = 0
	ExitHardFault = 1 // reserved for tier-3 invocations during a batch
	ExitError     = 2
)

// Engine is the top-level orchestrator: it owns the validated parameter
// bundle, the error handler, and the frame pipeline, mirroring the
// shape of this tree's other top-level session types (config + error
// channel + a single owned processing stage).
type Engine struct {
	handler  *faults.Handler
	logger   *logging.Logger
	pipeline *pipeline.Pipeline
	prev     *frame.Frame
}

// Init constructs an Engine from a parameter bundle. Out-of-range or
// non-finite fields are clamped and reported through the handler rather
// than rejected, per spec.md §4.7; an unknown curve selector falls back
// to PPR. Init always returns a nil error.
func Init(bundle config.Bundle, logCfg logging.Config) (*Engine, error) {
	logger := logging.New(logCfg)
	handler := faults.NewHandler(logger)

	e := &Engine{
		handler:  handler,
		logger:   logger,
		pipeline: pipeline.New(bundle, handler),
	}
	return e, nil
}

// SetErrorCallback installs the single user-supplied error callback
// invoked on every error regardless of log throttling.
func (e *Engine) SetErrorCallback(cb func(faults.Record)) {
	e.handler.SetCallback(cb)
}

// SetMode sets the deterministic and DCI-compliance flags, per spec.md
// §6's set_mode entry.
func (e *Engine) SetMode(deterministic, dciCompliance bool) {
	e.pipeline.SetMode(deterministic, dciCompliance)
}

// ProcessFrame runs input through the full pipeline, producing a frame
// tagged outSpace. The engine retains input as the "previous frame" for
// the next call's motion protection; callers processing a non-contiguous
// sequence (a cut, a seek) should call ResetSequence first.
func (e *Engine) ProcessFrame(input *frame.Frame, outSpace frame.ColorSpace) (*frame.Frame, error) {
	out, err := e.pipeline.ProcessFrame(input, e.prev, outSpace)
	if err != nil {
		return nil, err
	}
	e.prev = input
	return out, nil
}

// ResetSequence clears the previous-frame reference used for motion
// protection, so the next ProcessFrame call is treated as the first
// frame of a new shot.
func (e *Engine) ResetSequence() {
	e.prev = nil
}

// GetStatistics returns the current running statistics snapshot.
func (e *Engine) GetStatistics() pipeline.Statistics {
	return e.pipeline.Statistics()
}

// GetLastError returns the most recently raised error record, or nil if
// none has been raised since the last ResetErrors.
func (e *Engine) GetLastError() *faults.Record {
	return e.handler.LastError()
}

// ResetErrors clears the last-error record and throttle history.
func (e *Engine) ResetErrors() {
	e.handler.ResetErrors()
}

// AggregateReport returns the accumulated log-throttle history across
// every error code raised so far.
func (e *Engine) AggregateReport() []faults.AggregateEntry {
	return e.handler.AggregateReport()
}

// ExitCode maps the severity of the engine's last error to a CLI exit
// code for host tools, per spec.md §6.
func (e *Engine) ExitCode() int {
	rec := e.GetLastError()
	if rec == nil {
		return ExitSuccess
	}
	if rec.Code.Tier() == faults.TierHardFallback {
		return ExitHardFault
	}
	return ExitError
}
