package embryogen

import "fmt"

// ConfigError marks a problem discovered before Simulation.Run starts --
// a missing scenario argument, an inconsistent SceneControls value, an
// invalid DivisionModel timeline -- that the caller should fail fast on,
// per SPEC_FULL.md §7.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config error: " + e.Msg }

// InvariantError marks a broken simulation invariant (e.g. a dictionary hash
// arriving with a string that conflicts with the one already recorded). The
// top of Simulation.Run recovers a panic carrying one of these on its own
// goroutine and returns it as an error, which cmd/embryogen turns into a
// non-zero exit with a one-line diagnostic; a panic on a FrontOfficer's
// round goroutine is not recovered there.
type InvariantError struct {
	Func string
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s(): %s", e.Func, e.Msg)
}

// Invariantf panics with a formatted InvariantError; call sites read like
// assertions ("invariant: this must never happen here").
func Invariantf(fn, format string, args ...any) {
	panic(&InvariantError{Func: fn, Msg: fmt.Sprintf(format, args...)})
}
