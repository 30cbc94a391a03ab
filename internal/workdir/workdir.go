// Package workdir scopes changes of the process working directory.
// The working directory is a single piece of process-wide state that
// the provisioner mutates once per repository while recursing over
// dependencies, so every descent must restore the previous directory
// on all exit paths before a sibling repository is entered.
package workdir

import (
	"errors"
	"fmt"
	"os"
)

// In changes into dir, runs fn, and restores the previous working
// directory afterwards, also when fn returns an error.
func In(dir string, fn func() error) (err error) {
	prev, wdErr := os.Getwd()
	if wdErr != nil {
		return fmt.Errorf("resolving current directory: %w", wdErr)
	}
	if chdirErr := os.Chdir(dir); chdirErr != nil {
		return fmt.Errorf("entering %q: %w", dir, chdirErr)
	}
	defer func() {
		if restoreErr := os.Chdir(prev); restoreErr != nil {
			err = errors.Join(err, fmt.Errorf("restoring %q: %w", prev, restoreErr))
		}
	}()

	return fn()
}
