// Package errors provides the error taxonomy for the dataset formatting
// pipeline. All preprocessing failures are programming or data errors, not
// transient faults, so every error carries a stack trace and is meant to be
// surfaced immediately rather than retried.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to stderr.
		log.Printf("TFT-Warning: %v\n", w)
	}
	// zerolog warn hook, injected lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler overrides how non-fatal preprocessing warnings are
// reported.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // suppress warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is installed,
// falling back to the plain handler otherwise.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ConfigurationError reports an inconsistency in a column definition or a
// table that does not match it: duplicate column names, a missing or
// non-unique ID/Time/Target column, or an absent partition column. These are
// fatal setup mistakes, never retried.
type ConfigurationError struct {
	Op     string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tft: %s: invalid configuration: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "ConfigurationError")
}

// NewConfigurationError creates a ConfigurationError with a stack trace.
func NewConfigurationError(op, reason string) error {
	err := &ConfigurationError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// NotCalibratedError is returned when TransformInputs, FormatPredictions or a
// scaler Transform is called before the owning object has been calibrated on
// training data.
type NotCalibratedError struct {
	Name   string
	Method string
}

func (e *NotCalibratedError) Error() string {
	return fmt.Sprintf("tft: %s: scalers have not been set. Call SetScalers() or Fit() before using %s()", e.Name, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotCalibratedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("name", e.Name).
		Str("method", e.Method).
		Str("type", "NotCalibratedError")
}

// NewNotCalibratedError creates a NotCalibratedError with a stack trace.
func NewNotCalibratedError(name, method string) error {
	err := &NotCalibratedError{Name: name, Method: method}
	return errors.WithStack(err)
}

// UnseenLabelError reports a categorical value at transform time that was not
// present when the label encoder was fitted. There is deliberately no default
// bucket: an unseen label means the split or the data is wrong.
type UnseenLabelError struct {
	Column string
	Label  string
}

func (e *UnseenLabelError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("tft: column %q: unseen categorical label %q", e.Column, e.Label)
	}
	return fmt.Sprintf("tft: unseen categorical label %q", e.Label)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *UnseenLabelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("label", e.Label).
		Str("type", "UnseenLabelError")
}

// NewUnseenLabelError creates an UnseenLabelError with a stack trace.
func NewUnseenLabelError(column, label string) error {
	err := &UnseenLabelError{Column: column, Label: label}
	return errors.WithStack(err)
}

// ColumnNotFoundError reports a lookup of a column name that does not exist
// in a frame.
type ColumnNotFoundError struct {
	Op     string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("tft: %s: column %q not found", e.Op, e.Column)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError creates a ColumnNotFoundError with a stack trace.
func NewColumnNotFoundError(op, column string) error {
	err := &ColumnNotFoundError{Op: op, Column: column}
	return errors.WithStack(err)
}

// DimensionError reports input whose shape differs from what a calibrated
// object expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("tft: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is unusable for the operation,
// for example a negative forecast horizon or an empty table.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("tft: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Shared sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives a table or matrix
	// with no rows or no columns.
	ErrEmptyData = New("empty data")

	// ErrTypeMismatch is returned when a column holds values of a different
	// kind than the operation requires.
	ErrTypeMismatch = New("column type mismatch")
)
