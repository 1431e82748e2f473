// Package saga runs a step with a compensating action that undoes an earlier
// step when the current one fails.
package saga

import (
	"errors"
	"fmt"
)

// ErrCompensationFailed is part of the error chain when the compensating action failed too.
var ErrCompensationFailed = errors.New("rolling back the previous step failed")

// RunWithCompensation runs action. If it fails, compensate is run to undo
// whatever was committed before action.
//
// The returned error wraps the error of action. If compensate fails as well,
// the error additionally wraps ErrCompensationFailed and the compensation error.
func RunWithCompensation(action, compensate func() error) error {
	err := action()
	if err == nil {
		return nil
	}

	if cerr := compensate(); cerr != nil {
		return errors.Join(err, fmt.Errorf("%w: %w", ErrCompensationFailed, cerr))
	}

	return err
}
