package pubfig

// activeFactor is ambient process state, like the working directory.
// Figure scripts run sequentially; no locking (see package doc).
var activeFactor = 1.0

// CurrentFactor reports the scale factor currently in effect (1.0 when
// no destination context is active).
func CurrentFactor() float64 {
	return activeFactor
}

// Use installs dest's scale factor and returns a function restoring the
// factor it replaced:
//
//	defer pubfig.Use(pubfig.DestFigma)()
//
// Guards nest; each captures its own prior factor, so inner contexts
// restore to the outer context's factor regardless of destination.
func Use(dest string) (restore func()) {
	prev := activeFactor
	activeFactor = Factor(dest)
	return func() { activeFactor = prev }
}

// With runs fn with dest's scale factor active. The prior factor is
// restored on every exit path - normal return, error, or panic - and
// fn's error comes back unmodified.
func With(dest string, fn func() error) error {
	defer Use(dest)()
	return fn()
}
