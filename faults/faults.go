// Package faults implements the engine's error taxonomy, tiered fallback
// selector, per-code log throttling, and aggregate reporting, per
// spec.md §4.8.
package faults

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Code identifies a fixed error condition the engine can raise.
type Code int

const (
	SUCCESS Code = iota
	SCHEMA_MISSING
	RANGE_PIVOT
	RANGE_KNEE
	NAN_INF
	DET_MISMATCH
	HL_FLICKER
	DCI_BOUND
	GAMUT_OOG
)

func (c Code) String() string {
	switch c {
	case SUCCESS:
		return "SUCCESS"
	case SCHEMA_MISSING:
		return "SCHEMA_MISSING"
	case RANGE_PIVOT:
		return "RANGE_PIVOT"
	case RANGE_KNEE:
		return "RANGE_KNEE"
	case NAN_INF:
		return "NAN_INF"
	case DET_MISMATCH:
		return "DET_MISMATCH"
	case HL_FLICKER:
		return "HL_FLICKER"
	case DCI_BOUND:
		return "DCI_BOUND"
	case GAMUT_OOG:
		return "GAMUT_OOG"
	default:
		return "UNKNOWN"
	}
}

// Severity classifies a Code for logging purposes.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// Tier is the fallback tier a Code escalates to when raised.
type Tier int

const (
	TierNone Tier = iota
	TierParameterCorrection
	TierStandardFallback
	TierHardFallback
)

type codeInfo struct {
	severity Severity
	tier     Tier
}

var taxonomy = map[Code]codeInfo{
	SUCCESS:        {SeverityInfo, TierNone},
	SCHEMA_MISSING: {SeverityError, TierStandardFallback},
	RANGE_PIVOT:    {SeverityWarn, TierParameterCorrection},
	RANGE_KNEE:     {SeverityWarn, TierParameterCorrection},
	NAN_INF:        {SeverityError, TierHardFallback},
	DET_MISMATCH:   {SeverityWarn, TierStandardFallback},
	HL_FLICKER:     {SeverityWarn, TierStandardFallback},
	DCI_BOUND:      {SeverityError, TierStandardFallback},
	GAMUT_OOG:      {SeverityError, TierStandardFallback},
}

// Severity returns the fixed severity for c.
func (c Code) Severity() Severity { return taxonomy[c].severity }

// Tier returns the fixed fallback tier for c.
func (c Code) Tier() Tier { return taxonomy[c].tier }

// Record is an error record as described in spec.md §3: code, message,
// offending field/value, clip identity, timecode, the action taken, and
// when it was observed.
type Record struct {
	Code      Code
	Message   string
	Field     string
	Value     float64
	ClipID    string
	Timecode  time.Duration
	Action    string
	Timestamp time.Time
}

func (r Record) Error() string {
	return fmt.Sprintf("%s: %s (field=%s value=%v action=%s)", r.Code, r.Message, r.Field, r.Value, r.Action)
}

// newRecord builds a timestamped Record. The message is wrapped through
// github.com/pkg/errors and stored as its string form, "CODE: message";
// no stack trace is kept on the Record.
func newRecord(code Code, field string, value float64, message, action string) Record {
	return Record{
		Code:      code,
		Message:   errors.Wrap(errors.New(message), code.String()).Error(),
		Field:     field,
		Value:     value,
		Action:    action,
		Timestamp: time.Now(),
	}
}
