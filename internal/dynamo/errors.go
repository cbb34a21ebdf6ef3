package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for integration runs.
var (
	// ErrConfig indicates rejected run parameters (non-positive dt or step count, non-finite input).
	ErrConfig = errors.New("dynamo: invalid configuration")

	// ErrSingularity indicates the body reached the attractor's center, where the force law is undefined.
	ErrSingularity = errors.New("dynamo: position magnitude is zero (gravitational singularity)")

	// ErrNonFinite indicates a position coordinate became NaN or infinite.
	ErrNonFinite = errors.New("dynamo: position is not finite")

	// ErrOutput indicates the output destination could not be opened or written.
	ErrOutput = errors.New("dynamo: output failed")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

// ConfigError returns an error wrapping ErrConfig with a formatted reason.
func ConfigError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// OutputError wraps err as an ErrOutput for the given destination.
func OutputError(dest string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrOutput, dest, err)
}
