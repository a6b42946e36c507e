package model

// CalibrationState represents whether an object has learned its statistics.
type CalibrationState int

const (
	// NotCalibrated means no statistics have been computed yet.
	NotCalibrated CalibrationState = iota
	// Calibrated means statistics were computed from training data.
	Calibrated
)

// BaseCalibrator is embedded by every object that computes statistics once
// from a training split and applies them afterwards. It provides the single
// atomic is-calibrated check that transform operations guard on.
type BaseCalibrator struct {
	state CalibrationState
}

// IsCalibrated reports whether calibration has completed.
func (c *BaseCalibrator) IsCalibrated() bool {
	return c.state == Calibrated
}

// SetCalibrated marks calibration as complete.
func (c *BaseCalibrator) SetCalibrated() {
	c.state = Calibrated
}

// Reset returns the object to the uncalibrated state.
func (c *BaseCalibrator) Reset() {
	c.state = NotCalibrated
}
