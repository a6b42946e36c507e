package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// EncodeState writes a calibration snapshot to w using gob.
func EncodeState(w io.Writer, state interface{}) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(state); err != nil {
		return errors.Wrap(err, "failed to encode state")
	}
	return nil
}

// DecodeState reads a calibration snapshot from r using gob.
func DecodeState(r io.Reader, state interface{}) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(state); err != nil {
		return errors.Wrap(err, "failed to decode state")
	}
	return nil
}

// SaveState writes a calibration snapshot to a file.
//
// Example:
//
//	snapshot := formatter.Snapshot()
//	err := model.SaveState(snapshot, "volatility_scalers.gob")
func SaveState(state interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	return EncodeState(file, state)
}

// LoadState reads a calibration snapshot from a file into state, which must
// be a pointer.
func LoadState(state interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return DecodeState(file, state)
}
